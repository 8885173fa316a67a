package configurator

import (
	"fmt"
	"reflect"
)

// FromStruct builds a Configurator from the tagged, exported fields of a
// struct. target must be a non-nil pointer to the configuration object.
//
// Fields opt in with a `config` struct tag naming their key; an empty tag
// value falls back to the field name and `config:"-"` skips the field. The
// `usage` tag documents the parameter. keyPrefix is prepended to every key.
//
// The current field values become the defaults. Supported field types are
// bool, string, int, int64, uint64, float64 and time.Duration; other tagged
// types need an explicit Builder registration with a custom converter.
func FromStruct(name, description, keyPrefix string, target any) (Configurator, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, fmt.Errorf("FromStruct requires a non-nil struct pointer, got %T", target)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("FromStruct requires a struct pointer, got %T", target)
	}

	b := NewBuilder(name).WithDescription(description).WithKeyPrefix(keyPrefix)
	t := rv.Type()
	tagged := 0

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup("config")
		if !ok || tag == "-" {
			continue
		}
		key := tag
		if key == "" {
			key = field.Name
		}
		conv := converterFor(field.Type)
		if conv == nil {
			return nil, fmt.Errorf("field %s.%s: no converter for type %s", t.Name(), field.Name, field.Type)
		}
		tagged++
		b.Custom(key, rv.Field(i).Addr().Interface(), conv, field.Tag.Get("usage"))
	}

	if tagged == 0 {
		return nil, fmt.Errorf("%w: %s has no fields tagged with `config`", ErrNoParameters, t.Name())
	}
	return b.Build()
}

// MustFromStruct is like FromStruct but panics on error.
func MustFromStruct(name, description, keyPrefix string, target any) Configurator {
	c, err := FromStruct(name, description, keyPrefix, target)
	if err != nil {
		panic(fmt.Sprintf("configurator from struct failed: %v", err))
	}
	return c
}
