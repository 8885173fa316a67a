package configurator

import (
	"os"
	"strings"
)

// ArgPrefix starts every command line argument recognized by ParseArgs.
const ArgPrefix = "-"

// ParseArgs scans raw command line tokens for known keys and returns the
// matched (canonical key, value) pairs. Tokens have the shape "-name=value"
// or bare "-name", which is shorthand for "-name=true". The prefix is
// stripped before the name is matched against the external arg names
// derived from keys.
//
// Tokens that match no known key are collected in unused, never dropped
// silently. ParseArgs fails with an AmbiguousKeysError before looking at
// any token when two keys derive the same argument name.
func ParseArgs(keys []string, args []string) (values map[string]string, unused []string, err error) {
	expected, err := ArgFormat.externalNames("", keys)
	if err != nil {
		return nil, nil, err
	}

	values = make(map[string]string)
	for _, arg := range args {
		if !strings.HasPrefix(arg, ArgPrefix) {
			unused = append(unused, arg)
			continue
		}
		name := strings.TrimPrefix(arg, ArgPrefix)
		value := "true" // bare "-name" is boolean shorthand
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			value = name[eq+1:]
			name = name[:eq]
		}
		key, known := expected[name]
		if !known {
			unused = append(unused, arg)
			continue
		}
		values[key] = value
	}
	return values, unused, nil
}

// ParseEnv matches the process environment against the external env names
// of keys under prefix and returns the (canonical key, value) pairs of all
// variables that are set. Matching is by exact name equality.
//
// Like ParseArgs it fails with an AmbiguousKeysError when the key set is
// ambiguous for the env format.
func ParseEnv(keys []string, prefix string) (map[string]string, error) {
	expected, err := EnvFormat.externalNames(prefix, keys)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	for name, key := range expected {
		if value, ok := os.LookupEnv(name); ok {
			values[key] = value
		}
	}
	return values, nil
}

// SetFromArgs applies command line arguments to c and returns all tokens
// that had no effect: unmatched tokens plus failed pairs rendered as
// "key=reason".
func SetFromArgs(c Configurator, args []string) ([]string, error) {
	values, unused, err := ParseArgs(c.Keys(), args)
	if err != nil {
		return nil, err
	}
	invalid := c.SetAll(values)
	for _, key := range sortedKeys(invalid) {
		unused = append(unused, key+"="+invalid[key])
	}
	return unused, nil
}

// SetFromEnv applies environment variables with the given prefix to c. The
// returned ErrorMap carries per-key failures; the error reports ambiguous
// key sets.
func SetFromEnv(c Configurator, prefix string) (ErrorMap, error) {
	values, err := ParseEnv(c.Keys(), prefix)
	if err != nil {
		return nil, err
	}
	return c.SetAll(values), nil
}
