package configurator

import (
	"fmt"
	"io"
)

// PrintHelp writes a textual listing of every parameter managed by c to w,
// one parameter per line in sorted key order. Each line shows the derived
// argument name, the derived environment variable name under envPrefix, the
// canonical key, the current and default values and the description. Enum
// options are listed indented under their parameter. The listing ends with
// a trailing newline.
func PrintHelp(w io.Writer, c Configurator, envPrefix string) error {
	for _, key := range c.Keys() {
		p := c.Parameter(key)
		if p == nil {
			continue
		}

		argName := ArgPrefix + ArgFormat.Apply("", key)
		envName := EnvFormat.Apply(envPrefix, key)
		current := p.Get()

		line := fmt.Sprintf("%s  %s  (%s) = %q (default %q)", argName, envName, key, current, p.DefaultValue())
		if desc := p.Description(); desc != "" {
			line += "\n\t" + desc
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		for _, option := range p.Options() {
			optLine := "\t* " + option
			if desc, ok := p.OptionDescription(option); ok && desc != "" {
				optLine += ": " + desc
			}
			if _, err := fmt.Fprintln(w, optLine); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
