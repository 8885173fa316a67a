package configurator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNoConfigurators is returned by Merge when called without children.
	ErrNoConfigurators = errors.New("no configurators to merge")

	// ErrNoParameters is returned by Build when nothing was registered.
	ErrNoParameters = errors.New("no parameters registered")
)

// DuplicateKeyError reports two parameters claiming the same canonical key.
// It is fatal at construction time; no configurator is built once it occurs.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// IllegalValueError reports a value string that does not parse for the
// declared type of a parameter. Unwrap exposes the underlying parse error.
type IllegalValueError struct {
	Key   string
	Value string
	Type  string
	Err   error
}

func (e *IllegalValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("illegal value %q for key %q (%s): %v", e.Value, e.Key, e.Type, e.Err)
	}
	return fmt.Sprintf("illegal value %q for key %q (%s)", e.Value, e.Key, e.Type)
}

func (e *IllegalValueError) Unwrap() error { return e.Err }

// AmbiguousKeysError reports canonical keys whose external names collide
// under the same format and prefix. It prevents construction of the
// parsing step outright.
type AmbiguousKeysError struct {
	Format string   // "arg" or "env"
	Keys   []string // all colliding canonical keys
}

func (e *AmbiguousKeysError) Error() string {
	return fmt.Sprintf("ambiguous %s names for keys: %s", e.Format, strings.Join(e.Keys, ", "))
}

// ErrorMap collects per-key failures from bulk operations. Keys map to a
// human-readable reason; an empty map signals full success. Lookup misses
// during single-key operations are never reported through an ErrorMap.
type ErrorMap map[string]string

// Put records a failure reason for key.
func (m ErrorMap) Put(key, reason string) {
	m[key] = reason
}

// Merge copies all entries of other into m and returns m.
func (m ErrorMap) Merge(other ErrorMap) ErrorMap {
	for k, v := range other {
		m[k] = v
	}
	return m
}

// String renders the failures in sorted key order, one "key: reason" pair
// per line. An empty map renders as the empty string.
func (m ErrorMap) String() string {
	if len(m) == 0 {
		return ""
	}
	keys := sortedKeys(m)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m[k])
	}
	return b.String()
}

func sortedKeys(m ErrorMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
