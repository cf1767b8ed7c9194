package dictomaton

import "sort"

// ValueMap is an immutable key to int64 mapping built on top of a
// PerfectHashDictionary: Get(k) looks up k's rank and indexes a parallel
// values array, so the whole structure costs one extra int64 per key over
// the dictionary alone.
type ValueMap struct {
	dict   *PerfectHashDictionary
	values []int64
}

// Get returns the value associated with key and true, or (0, false) if key
// was not part of the map.
func (m *ValueMap) Get(key string) (int64, bool) {
	r := m.dict.Number(key)
	if r == -1 {
		return 0, false
	}
	return m.values[r-1], true
}

// GetOrElse is Get with a caller-supplied default instead of an ok flag.
func (m *ValueMap) GetOrElse(key string, def int64) int64 {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// Size returns the number of entries in the map.
func (m *ValueMap) Size() int { return m.dict.Size() }

// Keys returns every key in lexicographic order.
func (m *ValueMap) Keys() []string {
	keys := make([]string, 0, m.Size())
	m.dict.Iterate(func(seq string) bool {
		keys = append(keys, seq)
		return true
	})
	return keys
}

// Values returns every value, ordered to match Keys.
func (m *ValueMap) Values() []int64 {
	out := make([]int64, len(m.values))
	copy(out, m.values)
	return out
}

// Entry is one key-value pair, as returned by Entries.
type Entry struct {
	Key   string
	Value int64
}

// Entries returns every (key, value) pair in key order.
func (m *ValueMap) Entries() []Entry {
	keys := m.Keys()
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: m.values[i]}
	}
	return entries
}

// SortedValueMapBuilder builds a ValueMap from (key, value) pairs presented
// in already-sorted key order, appending each value to a parallel buffer
// while feeding the key to an internal perfect-hash Builder. This is the
// cheaper of the two construction paths described in spec.md 4.6, since it
// never has to sort or buffer the keys.
type SortedValueMapBuilder struct {
	keys   *Builder
	values []int64
}

// NewSortedValueMapBuilder creates an empty SortedValueMapBuilder.
func NewSortedValueMapBuilder() *SortedValueMapBuilder {
	return &SortedValueMapBuilder{keys: NewBuilder()}
}

// Add inserts a (key, value) pair. key must be strictly greater than every
// previously added key; see Builder.Add for the error cases.
func (b *SortedValueMapBuilder) Add(key string, value int64) error {
	if err := b.keys.Add(key); err != nil {
		return err
	}
	b.values = append(b.values, value)
	return nil
}

// Build finalizes the builder and returns the resulting ValueMap.
func (b *SortedValueMapBuilder) Build() *ValueMap {
	return &ValueMap{dict: b.keys.BuildPerfectHash(), values: b.values}
}

// ValueMapBuilder is the general construction path: it collects (key,
// value) pairs in any order, then streams them into a
// SortedValueMapBuilder in sorted order once finalized. Prefer
// SortedValueMapBuilder when the caller already has sorted input.
type ValueMapBuilder struct {
	pairs map[string]int64
}

// NewValueMapBuilder creates an empty ValueMapBuilder.
func NewValueMapBuilder() *ValueMapBuilder {
	return &ValueMapBuilder{pairs: make(map[string]int64)}
}

// Put inserts or overwrites the value associated with key.
func (b *ValueMapBuilder) Put(key string, value int64) {
	b.pairs[key] = value
}

// Build sorts the collected keys by UTF-16 code-unit order -- the same
// order Builder.Add enforces -- and streams them into a
// SortedValueMapBuilder, returning the resulting ValueMap.
func (b *ValueMapBuilder) Build() *ValueMap {
	keys := make([]string, 0, len(b.pairs))
	for k := range b.pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareChars(encodeString(keys[i]), encodeString(keys[j])) < 0
	})

	sorted := NewSortedValueMapBuilder()
	for _, k := range keys {
		_ = sorted.Add(k, b.pairs[k])
	}
	return sorted.Build()
}
