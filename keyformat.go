package configurator

import (
	"sort"
	"strings"
)

// KeyFormat is a deterministic, pure transform from a canonical key to its
// external spelling for one target. The transform is lossy: distinct keys
// may map to the same external name, which Collisions detects.
type KeyFormat struct {
	name      string
	separator byte
	uppercase bool
}

var (
	// ArgFormat derives command line argument names: separator '-',
	// lowercase. "myApp" becomes "my-app".
	ArgFormat = KeyFormat{name: "arg", separator: '-', uppercase: false}

	// EnvFormat derives environment variable names: separator '_',
	// uppercase. "myApp" becomes "MY_APP".
	EnvFormat = KeyFormat{name: "env", separator: '_', uppercase: true}
)

// String returns the target name of the format, "arg" or "env".
func (f KeyFormat) String() string { return f.name }

// Apply derives the external name of key and prepends prefix verbatim; no
// separator is inserted between prefix and body, callers include one in the
// prefix if desired.
//
// The key is scanned left to right: every byte that is not an ASCII letter
// or digit becomes the separator, every run of uppercase letters gets a
// separator inserted before it, runs of separators collapse to one, and the
// result is case-folded per target. Non-ASCII bytes count as "not a letter"
// and are replaced, so "HTML$Valües" yields "html-val-es" for arguments.
func (f KeyFormat) Apply(prefix, key string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(key) + len(key)/2)
	b.WriteString(prefix)

	lastSep := true // suppress a leading separator
	lastUpper := false
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if !lastUpper && !lastSep {
				b.WriteByte(f.separator)
			}
			if !f.uppercase {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
			lastSep = false
			lastUpper = true
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			if f.uppercase && c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
			lastSep = false
			lastUpper = false
		default:
			if !lastSep {
				b.WriteByte(f.separator)
			}
			lastSep = true
			lastUpper = false
		}
	}

	out := b.String()
	// a trailing separator survives the scan only when the key ends on
	// replaced characters
	if len(out) > len(prefix) && out[len(out)-1] == f.separator {
		out = out[:len(out)-1]
	}
	return out
}

// Collisions runs the forward transform over keys and returns every
// canonical key whose external name under prefix is shared with another
// key. The result is sorted; an empty result means the key set is
// unambiguous for this format.
func (f KeyFormat) Collisions(prefix string, keys []string) []string {
	byName := make(map[string][]string, len(keys))
	for _, key := range keys {
		name := f.Apply(prefix, key)
		byName[name] = append(byName[name], key)
	}

	var colliding []string
	for _, owners := range byName {
		if len(owners) > 1 {
			colliding = append(colliding, owners...)
		}
	}
	sort.Strings(colliding)
	return colliding
}

// externalNames maps the expected external name of every key to its
// canonical key. It fails with an AmbiguousKeysError when two keys share a
// name, so no parsing step is ever constructed over an ambiguous key set.
func (f KeyFormat) externalNames(prefix string, keys []string) (map[string]string, error) {
	if colliding := f.Collisions(prefix, keys); len(colliding) > 0 {
		return nil, &AmbiguousKeysError{Format: f.name, Keys: colliding}
	}
	names := make(map[string]string, len(keys))
	for _, key := range keys {
		names[f.Apply(prefix, key)] = key
	}
	return names, nil
}
