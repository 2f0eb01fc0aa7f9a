package branch

import "sort"

// SelectRecent returns the count most recently committed entries, newest
// first. A count of 0, or one larger than len(entries), returns all entries.
//
// Entries with equal commit times keep their relative input order. The input
// slice is not modified.
func SelectRecent(entries []Entry, count uint) []Entry {
	n := len(entries)
	if count != 0 && count < uint(n) {
		n = int(count)
	}
	if n == 0 {
		return []Entry{}
	}

	// Indices stand in for entries so that ties can fall back to input order.
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	newer := func(a, b int) bool {
		ta, tb := entries[a].CommitTime, entries[b].CommitTime
		if ta.Equal(tb) {
			return a < b
		}
		return ta.After(tb)
	}

	if n < len(entries) {
		partialSelect(idx, n, newer)
	}
	top := idx[:n]
	sort.Slice(top, func(i, j int) bool { return newer(top[i], top[j]) })

	result := make([]Entry, n)
	for i, k := range top {
		result[i] = entries[k]
	}
	return result
}

// partialSelect moves the k best indices (per less) to idx[:k] in no
// particular order, using quickselect.
func partialSelect(idx []int, k int, less func(a, b int) bool) {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partition(idx, lo, hi, less)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition uses the middle element as pivot and returns its final position.
func partition(idx []int, lo, hi int, less func(a, b int) bool) int {
	mid := lo + (hi-lo)/2
	idx[mid], idx[hi] = idx[hi], idx[mid]
	pivot := idx[hi]
	store := lo
	for i := lo; i < hi; i++ {
		if less(idx[i], pivot) {
			idx[i], idx[store] = idx[store], idx[i]
			store++
		}
	}
	idx[store], idx[hi] = idx[hi], idx[store]
	return store
}
