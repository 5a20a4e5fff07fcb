package domain

import "strings"

// Placeholder delimiters. A decorated key reads "$%Key%$".
const (
	DelimiterStart = "$%"
	DelimiterEnd   = "%$"
)

// PairStatus reports whether a pair found a placeholder during the
// last substitution run.
type PairStatus string

// Pair statuses.
const (
	// PairStatusUnset means the pair has not been through a run,
	// or was edited since the last one.
	PairStatusUnset PairStatus = "unset"

	// PairStatusReplaced means at least one placeholder matched.
	PairStatusReplaced PairStatus = "replaced"

	// PairStatusNotFound means no placeholder matched.
	PairStatusNotFound PairStatus = "not-found"
)

// String returns the string representation.
func (s PairStatus) String() string {
	return string(s)
}

// IdentifierPair is one editable key/value entry of a merge session.
// Keys are free text; uniqueness is not enforced. Each pair is
// substituted independently.
type IdentifierPair struct {
	// ID is an opaque handle for UI addressing.
	ID string

	// Key is the identifier as parsed or as typed, decoration included.
	Key string

	// Value is the replacement text.
	Value string

	// Status is the outcome of the last substitution run.
	Status PairStatus
}

// NormalizeKey strips the placeholder decoration from a key when both
// sides are present. A key with only one side is left untouched.
func NormalizeKey(key string) string {
	if strings.HasPrefix(key, DelimiterStart) && strings.HasSuffix(key, DelimiterEnd) &&
		len(key) >= len(DelimiterStart)+len(DelimiterEnd) {
		return key[len(DelimiterStart) : len(key)-len(DelimiterEnd)]
	}
	return key
}

// DecorateKey wraps a key in the placeholder delimiters unless it is
// already fully decorated.
func DecorateKey(key string) string {
	if strings.HasPrefix(key, DelimiterStart) && strings.HasSuffix(key, DelimiterEnd) &&
		len(key) >= len(DelimiterStart)+len(DelimiterEnd) {
		return key
	}
	return DelimiterStart + key + DelimiterEnd
}

// FlatMapping is the insertion-ordered key/value association every
// parser converges on. Keys and values are always strings.
type FlatMapping struct {
	keys   []string
	values map[string]string
}

// NewFlatMapping creates an empty mapping.
func NewFlatMapping() *FlatMapping {
	return &FlatMapping{values: make(map[string]string)}
}

// Set inserts or updates a key. Insertion order is preserved; updating
// an existing key keeps its original position. Empty keys are dropped.
func (m *FlatMapping) Set(key, value string) {
	if key == "" {
		return
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for a key.
func (m *FlatMapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *FlatMapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *FlatMapping) Len() int {
	return len(m.keys)
}

// Pairs materialises the mapping as identifier pairs in insertion
// order, each with an unset status. IDs are assigned by the caller.
func (m *FlatMapping) Pairs() []IdentifierPair {
	pairs := make([]IdentifierPair, 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, IdentifierPair{
			Key:    k,
			Value:  m.values[k],
			Status: PairStatusUnset,
		})
	}
	return pairs
}
