package branch

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// entrySource implements fuzzy.Source over entry names.
type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Match returns the entries whose names fuzzy-match pattern, in their
// original order. An empty pattern returns entries unchanged.
func Match(entries []Entry, pattern string) []Entry {
	if pattern == "" {
		return entries
	}

	matches := fuzzy.FindFrom(pattern, entrySource(entries))
	// fuzzy sorts by score; ranking is by commit time, so restore input order.
	indices := make([]int, len(matches))
	for i, m := range matches {
		indices[i] = m.Index
	}
	sort.Ints(indices)

	result := make([]Entry, len(indices))
	for i, k := range indices {
		result[i] = entries[k]
	}
	return result
}
