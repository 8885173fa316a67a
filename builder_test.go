package configurator_test

import (
	"strings"
	"testing"

	"github.com/jatronizer/configurator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("DefaultsCapturedAtBuild", func(t *testing.T) {
		host := "localhost"
		port := 25
		c, err := configurator.NewBuilder("smtp").
			String("host", &host, "relay host").
			Int("port", &port, "relay port").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "localhost", c.Parameter("host").DefaultValue())
		assert.Equal(t, "25", c.Parameter("port").DefaultValue())

		// mutating the bound value later changes Value but not the default
		host = "mail.example.com"
		v, _ := c.Value("host")
		assert.Equal(t, "mail.example.com", v)
		assert.Equal(t, "localhost", c.Parameter("host").DefaultValue())
	})

	t.Run("KeyPrefix", func(t *testing.T) {
		debug := false
		c, err := configurator.NewBuilder("app").
			WithKeyPrefix("app/").
			Bool("debug", &debug, "").
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"app/debug"}, c.Keys())
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		a, b := 0, 0
		_, err := configurator.NewBuilder("dup").
			Int("n", &a, "").
			Int("n", &b, "").
			Build()
		var dke *configurator.DuplicateKeyError
		require.ErrorAs(t, err, &dke)
		assert.Equal(t, "n", dke.Key)
	})

	t.Run("NoParameters", func(t *testing.T) {
		_, err := configurator.NewBuilder("empty").Build()
		assert.ErrorIs(t, err, configurator.ErrNoParameters)
	})

	t.Run("NilTarget", func(t *testing.T) {
		_, err := configurator.NewBuilder("bad").
			String("host", nil, "").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-nil pointer")
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			configurator.NewBuilder("empty").MustBuild()
		})
	})
}

func TestBuilderVar(t *testing.T) {
	// a parameter backed by getter and setter functions instead of a field
	level := "info"
	c, err := configurator.NewBuilder("log").
		Var("level", "log verbosity",
			configurator.MustEnumConverter(
				configurator.EnumOption{Name: "debug", Description: "everything", Value: "debug"},
				configurator.EnumOption{Name: "info", Description: "default", Value: "info"},
				configurator.EnumOption{Name: "error", Description: "failures only", Value: "error"},
			),
			func() any { return level },
			func(v any) error { level = v.(string); return nil },
		).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "info", c.Parameter("level").DefaultValue())

	n, err := c.Set("level", "error")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "error", level)

	_, err = c.Set("level", "loud")
	var ive *configurator.IllegalValueError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, "level", ive.Key)
}

func TestEnumParameter(t *testing.T) {
	mode := "auto"
	conv := configurator.MustEnumConverter(
		configurator.EnumOption{Name: "auto", Description: "pick at runtime", Value: "auto"},
		configurator.EnumOption{Name: "off", Description: "disabled", Value: "off"},
		configurator.EnumOption{Name: "on", Description: "always on", Value: "on"},
	)
	c, err := configurator.NewBuilder("cache").
		Enum("mode", &mode, conv, "caching mode").
		Build()
	require.NoError(t, err)

	p := c.Parameter("mode")
	require.NotNil(t, p)

	t.Run("OptionsSorted", func(t *testing.T) {
		assert.Equal(t, []string{"auto", "off", "on"}, p.Options())
	})

	t.Run("OptionDescription", func(t *testing.T) {
		desc, ok := p.OptionDescription("off")
		require.True(t, ok)
		assert.Equal(t, "disabled", desc)

		_, ok = p.OptionDescription("unknown")
		assert.False(t, ok)
	})

	t.Run("UnknownOptionRejected", func(t *testing.T) {
		_, err := c.Set("mode", "maybe")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "unknown option"))
		assert.Equal(t, "auto", mode)
	})
}

func TestParameterIdentity(t *testing.T) {
	a, b := 0, 0
	ca, err := configurator.NewBuilder("a").Int("n", &a, "").Build()
	require.NoError(t, err)
	cb, err := configurator.NewBuilder("b").Int("n", &b, "").Build()
	require.NoError(t, err)

	pa := ca.Parameter("n")
	pb := cb.Parameter("n")

	assert.True(t, pa.Is(pa))
	// same key, different underlying fields: never equal
	assert.False(t, pa.Is(pb))
	assert.False(t, pa.Is(nil))
}
