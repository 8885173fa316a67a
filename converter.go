package configurator

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Converter translates between the string form of a parameter and its typed
// value. Parse reports values that do not fit the declared type; Format is
// total and renders any value of the declared type deterministically.
type Converter interface {
	Parse(s string) (any, error)
	Format(v any) string
}

type boolConverter struct{}

func (boolConverter) Parse(s string) (any, error) { return strconv.ParseBool(s) }
func (boolConverter) Format(v any) string {
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return fmt.Sprintf("%v", v)
}

type stringConverter struct{}

func (stringConverter) Parse(s string) (any, error) { return s, nil }
func (stringConverter) Format(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

type intConverter struct {
	// asInt narrows the parsed value to the platform int type
	asInt bool
}

func (c intConverter) Parse(s string) (any, error) {
	bits := 64
	if c.asInt {
		bits = strconv.IntSize
	}
	i, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return nil, err
	}
	if c.asInt {
		return int(i), nil
	}
	return i, nil
}

func (c intConverter) Format(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%v", v)
}

type uintConverter struct{}

func (uintConverter) Parse(s string) (any, error) {
	return strconv.ParseUint(s, 10, 64)
}

func (uintConverter) Format(v any) string {
	if n, ok := v.(uint64); ok {
		return strconv.FormatUint(n, 10)
	}
	return fmt.Sprintf("%v", v)
}

type floatConverter struct{}

func (floatConverter) Parse(s string) (any, error) {
	return strconv.ParseFloat(s, 64)
}

func (floatConverter) Format(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

type durationConverter struct{}

func (durationConverter) Parse(s string) (any, error) { return time.ParseDuration(s) }
func (durationConverter) Format(v any) string {
	if d, ok := v.(time.Duration); ok {
		return d.String()
	}
	return fmt.Sprintf("%v", v)
}

// converterFor returns the default converter for primitive types, strings
// and time.Duration. It returns nil for unsupported kinds; callers supply
// an explicit Converter for those.
func converterFor(t reflect.Type) Converter {
	if t == reflect.TypeOf(time.Duration(0)) {
		return durationConverter{}
	}
	switch t.Kind() {
	case reflect.Bool:
		return boolConverter{}
	case reflect.String:
		return stringConverter{}
	case reflect.Int:
		return intConverter{asInt: true}
	case reflect.Int64:
		return intConverter{}
	case reflect.Uint64:
		return uintConverter{}
	case reflect.Float64:
		return floatConverter{}
	}
	return nil
}

// EnumOption declares one named value of an enumerated parameter.
type EnumOption struct {
	Name        string
	Description string
	Value       any
}

// EnumConverter maps a closed, documented set of names to values. Options
// are kept sorted by name so lookups can binary search and help output is
// deterministic.
type EnumConverter struct {
	options []EnumOption
}

// NewEnumConverter builds a converter over the given options. Option names
// must be unique; a duplicate name fails with a DuplicateKeyError.
func NewEnumConverter(options ...EnumOption) (*EnumConverter, error) {
	sorted := make([]EnumOption, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Name == sorted[i-1].Name {
			return nil, &DuplicateKeyError{Key: sorted[i].Name}
		}
	}
	return &EnumConverter{options: sorted}, nil
}

// MustEnumConverter is like NewEnumConverter but panics on error.
func MustEnumConverter(options ...EnumOption) *EnumConverter {
	c, err := NewEnumConverter(options...)
	if err != nil {
		panic(fmt.Sprintf("enum converter: %v", err))
	}
	return c
}

// Parse resolves an option by name. Unknown names fail.
func (c *EnumConverter) Parse(s string) (any, error) {
	i := sort.Search(len(c.options), func(i int) bool { return c.options[i].Name >= s })
	if i < len(c.options) && c.options[i].Name == s {
		return c.options[i].Value, nil
	}
	return nil, fmt.Errorf("unknown option %q", s)
}

// Format renders a value as its option name. Values outside the option set
// render through the %v verb; that only happens when the bound field was
// mutated past the configurator.
func (c *EnumConverter) Format(v any) string {
	for _, o := range c.options {
		if o.Value == v {
			return o.Name
		}
	}
	return fmt.Sprintf("%v", v)
}

// Options returns the option names in sorted order.
func (c *EnumConverter) Options() []string {
	names := make([]string, len(c.options))
	for i, o := range c.options {
		names[i] = o.Name
	}
	return names
}

// OptionDescription looks up the documentation of a single option by name.
// The second result is false for unknown names.
func (c *EnumConverter) OptionDescription(name string) (string, bool) {
	i := sort.Search(len(c.options), func(i int) bool { return c.options[i].Name >= name })
	if i < len(c.options) && c.options[i].Name == name {
		return c.options[i].Description, true
	}
	return "", false
}
