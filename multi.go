package configurator

import (
	"slices"
	"sort"
	"strings"
)

// keyOwner pairs a key with the index of the child configurator owning it.
type keyOwner struct {
	key   string
	owner int
}

// multi merges several configurators into one logical configurator. It owns
// a single sorted key array across all children plus a parallel owner-index
// array; every operation binary-searches the key array and delegates to the
// owning child. The struct is immutable after construction and safe for
// unsynchronized concurrent reads.
type multi struct {
	children []Configurator
	keys     []string
	owner    []int // parallel to keys: index into children
}

// Merge combines configurators into a single Configurator over the union of
// their key spaces.
//
// Construction collects every (key, owner) pair, sorts the pairs
// lexicographically and scans once for adjacent duplicates. Two children
// claiming the same key fail with a DuplicateKeyError naming that key;
// construction is atomic and no partially built configurator is observable.
// The one-time O(k log k) sort buys O(log k) routing for every subsequent
// lookup. An empty argument list fails with ErrNoConfigurators; a single
// configurator is returned as-is.
func Merge(configurators ...Configurator) (Configurator, error) {
	if len(configurators) == 0 {
		return nil, ErrNoConfigurators
	}
	if len(configurators) == 1 {
		return configurators[0], nil
	}

	children := make([]Configurator, len(configurators))
	copy(children, configurators)

	var pairs []keyOwner
	for i, c := range children {
		for _, key := range c.Keys() {
			pairs = append(pairs, keyOwner{key: key, owner: i})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	keys := make([]string, len(pairs))
	owner := make([]int, len(pairs))
	for i, p := range pairs {
		if i > 0 && p.key == keys[i-1] {
			return nil, &DuplicateKeyError{Key: p.key}
		}
		keys[i] = p.key
		owner[i] = p.owner
	}

	return &multi{
		children: children,
		keys:     keys,
		owner:    owner,
	}, nil
}

func (m *multi) Name() string {
	names := make([]string, len(m.children))
	for i, c := range m.children {
		names[i] = c.Name()
	}
	return strings.Join(names, ",")
}

func (m *multi) Description() string { return "" }

func (m *multi) Keys() []string {
	return slices.Clone(m.keys)
}

// HasKey reports membership through the explicit found result of the binary
// search, so the first sorted key counts as found like any other.
func (m *multi) HasKey(key string) bool {
	_, found := slices.BinarySearch(m.keys, key)
	return found
}

// childOf resolves the owning child of key, nil on a miss.
func (m *multi) childOf(key string) Configurator {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		return nil
	}
	return m.children[m.owner[i]]
}

func (m *multi) Parameter(key string) *Parameter {
	c := m.childOf(key)
	if c == nil {
		return nil
	}
	return c.Parameter(key)
}

func (m *multi) Value(key string) (string, bool) {
	c := m.childOf(key)
	if c == nil {
		return "", false
	}
	return c.Value(key)
}

func (m *multi) Set(key, value string) (int, error) {
	c := m.childOf(key)
	if c == nil {
		return 0, nil
	}
	return c.Set(key, value)
}

// SetAll fans the whole batch out to every child; each child filters to the
// keys it owns on its own. The merged ErrorMap keeps, per batch key, the
// owning child's verdict. Keys owned by no child are reported as unknown.
func (m *multi) SetAll(values map[string]string) ErrorMap {
	reports := make([]ErrorMap, len(m.children))
	for i, c := range m.children {
		reports[i] = c.SetAll(values)
	}

	invalid := make(ErrorMap)
	for key := range values {
		i, found := slices.BinarySearch(m.keys, key)
		if !found {
			invalid.Put(key, "unknown key")
			continue
		}
		if reason, failed := reports[m.owner[i]][key]; failed {
			invalid.Put(key, reason)
		}
	}
	return invalid
}

// Walk delegates to each child in child order; the global visitation order
// is grouped by child, not sorted by key.
func (m *multi) Walk(fn func(p *Parameter)) {
	for _, c := range m.children {
		c.Walk(fn)
	}
}
