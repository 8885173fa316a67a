package configurator

import (
	"fmt"
	"reflect"
	"sync"
)

// accessor reads and writes the live value behind a parameter. Callers hold
// the bound object's lock around both operations.
type accessor interface {
	load() any
	store(v any) error
}

// fieldAccess binds a parameter to an addressable value, typically a struct
// field or a variable reached through a pointer.
type fieldAccess struct {
	v reflect.Value
}

func (a fieldAccess) load() any { return a.v.Interface() }

func (a fieldAccess) store(v any) error {
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(a.v.Type()) {
		if !rv.Type().ConvertibleTo(a.v.Type()) {
			return fmt.Errorf("cannot assign %s to %s", rv.Type(), a.v.Type())
		}
		rv = rv.Convert(a.v.Type())
	}
	a.v.Set(rv)
	return nil
}

// funcAccess binds a parameter to explicit getter and setter functions.
type funcAccess struct {
	get func() any
	set func(v any) error
}

func (a *funcAccess) load() any { return a.get() }

func (a *funcAccess) store(v any) error { return a.set(v) }

// optioned is implemented by converters over enumerated types.
type optioned interface {
	Options() []string
	OptionDescription(name string) (string, bool)
}

// Parameter is an immutable handle on one configuration value: its key, the
// default captured at construction, a description, and get/set access to
// the live value on the bound configuration object.
type Parameter struct {
	key          string
	defaultValue string
	description  string
	conv         Converter
	access       accessor
	targetID     any
	typ          reflect.Type
	mu           *sync.Mutex
}

// newParameter captures the bound value's current string form as the
// default. mu is the lock domain of the bound configuration object and is
// shared by every parameter bound to the same object.
func newParameter(key, description string, conv Converter, access accessor, targetID any, mu *sync.Mutex) (*Parameter, error) {
	if key == "" {
		return nil, fmt.Errorf("parameter key must not be empty")
	}
	if conv == nil {
		return nil, fmt.Errorf("parameter %q has no converter", key)
	}
	mu.Lock()
	initial := access.load()
	mu.Unlock()
	return &Parameter{
		key:          key,
		defaultValue: conv.Format(initial),
		description:  description,
		conv:         conv,
		access:       access,
		targetID:     targetID,
		typ:          reflect.TypeOf(initial),
		mu:           mu,
	}, nil
}

// Key returns the canonical key of the parameter.
func (p *Parameter) Key() string { return p.key }

// DefaultValue returns the string form of the bound value at construction.
func (p *Parameter) DefaultValue() string { return p.defaultValue }

// Description returns the documentation of the parameter.
func (p *Parameter) Description() string { return p.description }

// Type returns the type of the bound value.
func (p *Parameter) Type() reflect.Type { return p.typ }

// Get reads the live value off the bound object and renders it through the
// converter.
func (p *Parameter) Get() string {
	p.mu.Lock()
	v := p.access.load()
	p.mu.Unlock()
	return p.conv.Format(v)
}

// Set parses value through the converter and writes it to the bound object.
// A string that does not parse for the declared type fails with an
// IllegalValueError and leaves the bound value untouched.
func (p *Parameter) Set(value string) error {
	v, err := p.conv.Parse(value)
	if err != nil {
		return &IllegalValueError{Key: p.key, Value: value, Type: p.typeName(), Err: err}
	}
	p.mu.Lock()
	err = p.access.store(v)
	p.mu.Unlock()
	if err != nil {
		return &IllegalValueError{Key: p.key, Value: value, Type: p.typeName(), Err: err}
	}
	return nil
}

// Options returns the sorted option names of an enumerated parameter. The
// result is a copy and empty for non-enumerated types.
func (p *Parameter) Options() []string {
	if o, ok := p.conv.(optioned); ok {
		return o.Options()
	}
	return nil
}

// OptionDescription looks up per-option documentation by name. Absence is a
// normal outcome for non-enumerated types and unknown option names.
func (p *Parameter) OptionDescription(name string) (string, bool) {
	if o, ok := p.conv.(optioned); ok {
		return o.OptionDescription(name)
	}
	return "", false
}

// Is reports whether other describes the same parameter: same key, same
// bound target and same converter. Two parameters over different underlying
// fields are never equal, even with the same key.
func (p *Parameter) Is(other *Parameter) bool {
	if other == nil {
		return false
	}
	return p.key == other.key && p.targetID == other.targetID && p.conv == other.conv
}

func (p *Parameter) String() string {
	return fmt.Sprintf("%s (%s): %s", p.key, p.defaultValue, p.description)
}

func (p *Parameter) typeName() string {
	if p.typ == nil {
		return "<nil>"
	}
	return p.typ.String()
}
