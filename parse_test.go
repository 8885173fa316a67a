package configurator_test

import (
	"os"
	"testing"

	"github.com/jatronizer/configurator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	keys := []string{"smtp/host", "smtp/port", "verbose"}

	t.Run("KeyValueTokens", func(t *testing.T) {
		values, unused, err := configurator.ParseArgs(keys, []string{
			"-smtp-host=mail.example.com",
			"-smtp-port=587",
		})
		require.NoError(t, err)
		assert.Empty(t, unused)
		assert.Equal(t, map[string]string{
			"smtp/host": "mail.example.com",
			"smtp/port": "587",
		}, values)
	})

	t.Run("BareFlagIsBooleanShorthand", func(t *testing.T) {
		values, unused, err := configurator.ParseArgs(keys, []string{"-verbose"})
		require.NoError(t, err)
		assert.Empty(t, unused)
		assert.Equal(t, map[string]string{"verbose": "true"}, values)
	})

	t.Run("UnmatchedTokensCollected", func(t *testing.T) {
		values, unused, err := configurator.ParseArgs(keys, []string{
			"-smtp-host=x",
			"-unknown=1",
			"plain",
			"-alsounknown",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"smtp/host": "x"}, values)
		assert.Equal(t, []string{"-unknown=1", "plain", "-alsounknown"}, unused)
	})

	t.Run("EmptyValueKept", func(t *testing.T) {
		values, _, err := configurator.ParseArgs(keys, []string{"-smtp-host="})
		require.NoError(t, err)
		require.Contains(t, values, "smtp/host")
		assert.Equal(t, "", values["smtp/host"])
	})

	t.Run("AmbiguousKeysRejected", func(t *testing.T) {
		_, _, err := configurator.ParseArgs([]string{"myApp", "my-app"}, []string{"-my-app=1"})
		var ake *configurator.AmbiguousKeysError
		require.ErrorAs(t, err, &ake)
		assert.Equal(t, "arg", ake.Format)
		assert.ElementsMatch(t, []string{"myApp", "my-app"}, ake.Keys)
	})
}

func TestParseEnv(t *testing.T) {
	keys := []string{"smtp/host", "smtp/port", "verbose"}

	t.Run("ExactNameMatch", func(t *testing.T) {
		envVars := map[string]string{
			"TEST_SMTP_HOST": "env-host",
			"TEST_VERBOSE":   "true",
		}
		for k, v := range envVars {
			os.Setenv(k, v)
			defer os.Unsetenv(k)
		}

		values, err := configurator.ParseEnv(keys, "TEST_")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"smtp/host": "env-host",
			"verbose":   "true",
		}, values)
	})

	t.Run("UnsetVariablesIgnored", func(t *testing.T) {
		values, err := configurator.ParseEnv(keys, "NOTSET12345_")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("AmbiguousKeysRejected", func(t *testing.T) {
		_, err := configurator.ParseEnv([]string{"host", "HOST"}, "X_")
		var ake *configurator.AmbiguousKeysError
		require.ErrorAs(t, err, &ake)
		assert.Equal(t, "env", ake.Format)
	})
}

func TestSetFromArgs(t *testing.T) {
	cfg := &serverConfig{Host: "localhost", Port: 8080}
	c := newServerConfigurator(t, cfg)

	unused, err := configurator.SetFromArgs(c, []string{
		"-host=example.com",
		"-port=notanumber",
		"-debug",
		"-bogus=1",
	})
	require.NoError(t, err)

	assert.Equal(t, "example.com", cfg.Host)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 8080, cfg.Port)

	// unmatched tokens first, then failed pairs as key=reason
	require.Len(t, unused, 2)
	assert.Equal(t, "-bogus=1", unused[0])
	assert.Contains(t, unused[1], "port=")
	assert.Contains(t, unused[1], "illegal value")
}

func TestSetFromEnv(t *testing.T) {
	os.Setenv("APP_HOST", "env-host")
	os.Setenv("APP_PORT", "9999")
	defer os.Unsetenv("APP_HOST")
	defer os.Unsetenv("APP_PORT")

	cfg := &serverConfig{Host: "localhost", Port: 8080}
	c := newServerConfigurator(t, cfg)

	invalid, err := configurator.SetFromEnv(c, "APP_")
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, "env-host", cfg.Host)
	assert.Equal(t, 9999, cfg.Port)
}
