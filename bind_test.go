package configurator_test

import (
	"testing"
	"time"

	"github.com/jatronizer/configurator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStruct(t *testing.T) {
	type mailConfig struct {
		Host     string        `config:"host" usage:"smtp relay host"`
		Port     int           `config:"port" usage:"smtp relay port"`
		Timeout  time.Duration `config:"timeout"`
		Named    bool          `config:""` // empty tag falls back to the field name
		Skipped  string        `config:"-"`
		Untagged string
		hidden   int
	}

	cfg := &mailConfig{Host: "localhost", Port: 25, Timeout: 10 * time.Second}
	c, err := configurator.FromStruct("mail", "mail delivery", "mail/", cfg)
	require.NoError(t, err)

	t.Run("TaggedFieldsOnly", func(t *testing.T) {
		assert.Equal(t, []string{"mail/Named", "mail/host", "mail/port", "mail/timeout"}, c.Keys())
	})

	t.Run("Metadata", func(t *testing.T) {
		assert.Equal(t, "mail", c.Name())
		assert.Equal(t, "mail delivery", c.Description())
		p := c.Parameter("mail/host")
		require.NotNil(t, p)
		assert.Equal(t, "smtp relay host", p.Description())
		assert.Equal(t, "localhost", p.DefaultValue())
	})

	t.Run("SetWritesThrough", func(t *testing.T) {
		n, err := c.Set("mail/timeout", "30s")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})
}

func TestFromStructErrors(t *testing.T) {
	t.Run("NotAPointer", func(t *testing.T) {
		_, err := configurator.FromStruct("x", "", "", struct{}{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "struct pointer")
	})

	t.Run("NilPointer", func(t *testing.T) {
		_, err := configurator.FromStruct("x", "", "", (*struct{ A int })(nil))
		require.Error(t, err)
	})

	t.Run("NoTaggedFields", func(t *testing.T) {
		s := struct{ A int }{}
		_, err := configurator.FromStruct("x", "", "", &s)
		assert.ErrorIs(t, err, configurator.ErrNoParameters)
	})

	t.Run("UnsupportedFieldType", func(t *testing.T) {
		s := struct {
			Tags []string `config:"tags"`
		}{}
		_, err := configurator.FromStruct("x", "", "", &s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no converter")
	})
}
