package index

import (
	"slices"

	"path-mapper/feature/catalog"
)

// Table is an immutable sorted sequence of (key, items) pairs, unique by key.
type Table struct {
	keys  []Key
	items [][]catalog.Item
}

// tableBuilder collects items per key, dropping repeated rows.
type tableBuilder struct {
	sets map[Key][]catalog.Item
	seen map[Key]map[uint32]struct{}
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{
		sets: make(map[Key][]catalog.Item),
		seen: make(map[Key]map[uint32]struct{}),
	}
}

func (b *tableBuilder) add(key Key, item catalog.Item) {
	seen, ok := b.seen[key]
	if !ok {
		seen = make(map[uint32]struct{})
		b.seen[key] = seen
	}
	if _, dup := seen[item.RowID]; dup {
		return
	}
	seen[item.RowID] = struct{}{}
	b.sets[key] = append(b.sets[key], item)
}

func (b *tableBuilder) build() *Table {
	keys := make([]Key, 0, len(b.sets))
	for k := range b.sets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := &Table{keys: keys, items: make([][]catalog.Item, len(keys))}
	for i, k := range keys {
		t.items[i] = b.sets[k]
	}
	return t
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Range returns the half-open run of entries whose masked key equals key&mask,
// or (-1, -1) when there is none.
func (t *Table) Range(key, mask Key) (int, int) {
	masked := key & mask
	start, found := slices.BinarySearch(t.keys, masked)
	if !found && (start == len(t.keys) || t.keys[start]&mask != masked) {
		return -1, -1
	}

	end := start + 1
	for end < len(t.keys) && t.keys[end]&mask == masked {
		end++
	}
	return start, end
}

// Lookup returns the items of every entry matching key under mask, in key order.
func (t *Table) Lookup(key, mask Key) []catalog.Item {
	start, end := t.Range(key, mask)
	if start < 0 {
		return nil
	}
	var out []catalog.Item
	for i := start; i < end; i++ {
		out = append(out, t.items[i]...)
	}
	return out
}

// First returns the first item stored under exactly key.
func (t *Table) First(key Key) (catalog.Item, bool) {
	start, _ := t.Range(key, MaskFull)
	if start < 0 || len(t.items[start]) == 0 {
		return catalog.Item{}, false
	}
	return t.items[start][0], true
}
