// Package index resolves parsed path descriptors to catalog entities.
//
// Items are indexed by a 48-bit composite key (set id, slot or weapon body, variant) in
// sorted tables. A query knows a left-aligned prefix of those fields; because the table
// is sorted by the full key, every entry sharing the prefix forms one contiguous run that
// a binary search followed by a forward scan returns.
//
// Monster, demihuman and map names are resolved lazily per id and memoized for the
// lifetime of the Index. Actions are indexed by lowercase animation key.
//
// The Index is built once by Build and is safe for concurrent use.
package index
