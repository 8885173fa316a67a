package configurator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Values returns a flat snapshot of the current string form of every
// parameter managed by c, keyed by canonical key.
func Values(c Configurator) map[string]string {
	values := make(map[string]string)
	c.Walk(func(p *Parameter) {
		values[p.Key()] = p.Get()
	})
	return values
}

// Scan decodes the current configuration state of c into target, which must
// be a non-nil pointer to a struct or map. Keys containing '.' become
// nested sections; the `config` struct tag maps fields, and string values
// are weakly converted into the target's field types, including durations
// and comma-separated slices.
func Scan(c Configurator, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	c.Walk(func(p *Parameter) {
		setNestedValue(nested, p.Key(), p.Get())
	})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan configuration into %T: %w", target, err)
	}
	return nil
}

// setNestedValue sets a value in a nested map using a dot-notation key,
// creating intermediate maps as needed. A non-map value in the way is
// replaced by a new map.
func setNestedValue(nested map[string]any, key string, value any) {
	segments := strings.Split(key, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]
		if next, exists := current[segment]; exists {
			if nextMap, isMap := next.(map[string]any); isMap {
				current = nextMap
				continue
			}
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}
