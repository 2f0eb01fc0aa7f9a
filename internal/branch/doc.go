// Package branch defines the branch snapshot model and the ranking applied to it.
//
// A [Provider] lists the branches of one scope (local or remote) as [Entry]
// values. Entries are immutable snapshots: the rest of the pipeline only
// filters, reorders and selects them.
//
// # Ranking
//
// [SelectRecent] returns the top-N entries by tip commit time, most recent
// first. Entries with equal commit times keep the order the provider returned
// them in, so the result is deterministic for a fixed input.
//
// # Matching
//
// [Match] narrows a listing with a fuzzy pattern before ranking. It keeps
// provider order so that ranking alone decides the output order.
//
// # Errors
//
// Providers report a missing repository as [ErrRepositoryNotFound] and any
// other failure as a [*ProviderError]. A single unresolvable branch fails the
// whole listing; there is no partial result.
package branch
