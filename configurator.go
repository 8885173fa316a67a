package configurator

import (
	"slices"
	"strings"
)

// Configurator is a named, ordered collection of parameters belonging to
// one configuration object, or a merged view over several such collections.
//
// Lookup misses are never errors: Parameter returns nil, Value reports
// false, Set reports a zero count. Only genuinely illegal values and
// construction-time misconfiguration produce errors.
type Configurator interface {
	// Name returns the name of the configuration.
	Name() string

	// Description returns the documentation of the configuration.
	Description() string

	// Keys returns all keys in sorted order. The result is a copy.
	Keys() []string

	// HasKey reports whether key is managed by this configurator.
	HasKey(key string) bool

	// Parameter returns the parameter registered under key, nil if there
	// is none.
	Parameter(key string) *Parameter

	// Value returns the current string form of the value under key. The
	// second result is false when the key is unknown.
	Value(key string) (string, bool)

	// Set parses value and applies it to the parameter under key. It
	// returns the number of applied values: 1 on success, 0 for an
	// unknown key. An IllegalValueError reports a value that does not
	// parse for the parameter's type.
	Set(key, value string) (int, error)

	// SetAll applies every pair of the batch. Unknown keys and illegal
	// values are recorded in the returned ErrorMap instead of aborting
	// the batch; every resolvable pair is applied regardless of sibling
	// failures. The result is never nil; an empty map signals success.
	SetAll(values map[string]string) ErrorMap

	// Walk calls fn once per parameter in key order. fn must not mutate
	// the configurator.
	Walk(fn func(p *Parameter))
}

// instance manages the parameters of a single configuration object. Keys
// are held sorted so every lookup is a binary search.
type instance struct {
	name        string
	description string
	keys        []string
	params      []*Parameter // parallel to keys
}

// newInstance sorts the parameters by key and rejects duplicates. No
// configurator is returned once a duplicate is found.
func newInstance(name, description string, params []*Parameter) (*instance, error) {
	if len(params) == 0 {
		return nil, ErrNoParameters
	}
	sorted := make([]*Parameter, len(params))
	copy(sorted, params)
	slices.SortFunc(sorted, func(a, b *Parameter) int {
		return strings.Compare(a.key, b.key)
	})
	keys := make([]string, len(sorted))
	for i, p := range sorted {
		if i > 0 && p.key == keys[i-1] {
			return nil, &DuplicateKeyError{Key: p.key}
		}
		keys[i] = p.key
	}
	return &instance{
		name:        name,
		description: description,
		keys:        keys,
		params:      sorted,
	}, nil
}

func (c *instance) Name() string { return c.name }

func (c *instance) Description() string { return c.description }

func (c *instance) Keys() []string {
	return slices.Clone(c.keys)
}

func (c *instance) HasKey(key string) bool {
	_, found := slices.BinarySearch(c.keys, key)
	return found
}

func (c *instance) Parameter(key string) *Parameter {
	i, found := slices.BinarySearch(c.keys, key)
	if !found {
		return nil
	}
	return c.params[i]
}

func (c *instance) Value(key string) (string, bool) {
	i, found := slices.BinarySearch(c.keys, key)
	if !found {
		return "", false
	}
	return c.params[i].Get(), true
}

func (c *instance) Set(key, value string) (int, error) {
	i, found := slices.BinarySearch(c.keys, key)
	if !found {
		return 0, nil
	}
	if err := c.params[i].Set(value); err != nil {
		return 0, err
	}
	return 1, nil
}

func (c *instance) SetAll(values map[string]string) ErrorMap {
	invalid := make(ErrorMap)
	for key, value := range values {
		n, err := c.Set(key, value)
		switch {
		case err != nil:
			invalid.Put(key, err.Error())
		case n == 0:
			invalid.Put(key, "unknown key")
		}
	}
	return invalid
}

func (c *instance) Walk(fn func(p *Parameter)) {
	for _, p := range c.params {
		fn(p)
	}
}
