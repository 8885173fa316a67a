package configurator

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

// Builder assembles a Configurator from explicitly registered parameters.
// All parameters registered on one builder share the builder's lock domain,
// which models one configuration object.
//
// Registration errors are deferred: the chain stays fluent and Build
// reports the first error encountered.
type Builder struct {
	name        string
	description string
	keyPrefix   string
	mu          *sync.Mutex
	params      []*Parameter
	err         error
}

// NewBuilder creates a builder for a named configuration.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		mu:   &sync.Mutex{},
	}
}

// WithDescription documents the configuration as a whole.
func (b *Builder) WithDescription(description string) *Builder {
	b.description = description
	return b
}

// WithKeyPrefix prepends prefix to the key of every parameter registered
// after the call.
func (b *Builder) WithKeyPrefix(prefix string) *Builder {
	b.keyPrefix = prefix
	return b
}

// Bool registers a boolean parameter bound to target.
func (b *Builder) Bool(key string, target *bool, description string) *Builder {
	return b.bind(key, description, boolConverter{}, target)
}

// String registers a string parameter bound to target.
func (b *Builder) String(key string, target *string, description string) *Builder {
	return b.bind(key, description, stringConverter{}, target)
}

// Int registers an int parameter bound to target.
func (b *Builder) Int(key string, target *int, description string) *Builder {
	return b.bind(key, description, intConverter{asInt: true}, target)
}

// Int64 registers an int64 parameter bound to target.
func (b *Builder) Int64(key string, target *int64, description string) *Builder {
	return b.bind(key, description, intConverter{}, target)
}

// Uint64 registers a uint64 parameter bound to target.
func (b *Builder) Uint64(key string, target *uint64, description string) *Builder {
	return b.bind(key, description, uintConverter{}, target)
}

// Float64 registers a float64 parameter bound to target.
func (b *Builder) Float64(key string, target *float64, description string) *Builder {
	return b.bind(key, description, floatConverter{}, target)
}

// Duration registers a time.Duration parameter bound to target.
func (b *Builder) Duration(key string, target *time.Duration, description string) *Builder {
	return b.bind(key, description, durationConverter{}, target)
}

// Enum registers an enumerated parameter bound to target. target must be a
// pointer to a value assignable from the converter's option values.
func (b *Builder) Enum(key string, target any, conv *EnumConverter, description string) *Builder {
	return b.bind(key, description, conv, target)
}

// Custom registers a parameter with a caller-supplied converter. target
// must be a pointer to the bound value.
func (b *Builder) Custom(key string, target any, conv Converter, description string) *Builder {
	return b.bind(key, description, conv, target)
}

// Var registers a parameter backed by explicit getter and setter functions
// instead of a pointer. get must return the typed live value; set receives
// a value produced by conv.Parse.
func (b *Builder) Var(key, description string, conv Converter, get func() any, set func(v any) error) *Builder {
	if b.err != nil {
		return b
	}
	if get == nil || set == nil {
		b.err = fmt.Errorf("parameter %q: getter and setter must not be nil", key)
		return b
	}
	access := &funcAccess{get: get, set: set}
	p, err := newParameter(b.keyPrefix+key, description, conv, access, access, b.mu)
	if err != nil {
		b.err = err
		return b
	}
	b.params = append(b.params, p)
	return b
}

// bind registers a pointer-bound parameter.
func (b *Builder) bind(key, description string, conv Converter, target any) *Builder {
	if b.err != nil {
		return b
	}
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		b.err = fmt.Errorf("parameter %q: target must be a non-nil pointer, got %T", key, target)
		return b
	}
	p, err := newParameter(b.keyPrefix+key, description, conv, fieldAccess{v: rv.Elem()}, target, b.mu)
	if err != nil {
		b.err = err
		return b
	}
	b.params = append(b.params, p)
	return b
}

// Build creates the Configurator. It fails on registration errors, on an
// empty parameter set and on duplicate keys; no partially valid
// configurator is ever returned.
func (b *Builder) Build() (Configurator, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newInstance(b.name, b.description, b.params)
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() Configurator {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("configurator build failed: %v", err))
	}
	return c
}
