package configurator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a TOML, JSON or YAML file and returns its contents as a
// flat key-to-string map suitable for SetAll. Nested tables are flattened
// with '.' between segments; leaf values are rendered in their canonical
// string form so the configurator's converters can parse them back.
//
// The format is detected from the file extension first and, for neutral
// extensions, by attempting to parse the content as JSON, YAML and TOML in
// that order.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine config format for file '%s'", path)
		}
	}

	nested := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // preserve number precision
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	}

	values := make(map[string]string)
	for key, value := range flattenMap(nested, "") {
		values[key] = formatFileValue(value)
	}
	return values, nil
}

// SetFromFile applies the contents of a configuration file to c with the
// usual bulk-set partial-failure semantics. Keys present in the file but
// unknown to c are reported in the ErrorMap.
func SetFromFile(c Configurator, path string) (ErrorMap, error) {
	values, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return c.SetAll(values), nil
}

// detectFileFormat determines the format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect the format by parsing. JSON is
// tried first because it is the strictest, YAML before TOML because YAML is
// a superset of JSON.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}
	return ""
}

// flattenMap converts a nested map to a flat map with dot-notation keys.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if subMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(subMap, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = value
		}
	}
	return flat
}

// formatFileValue renders a decoded file value in the string form the
// default converters accept.
func formatFileValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
