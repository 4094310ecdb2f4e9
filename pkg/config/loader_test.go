package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opdbook/formkit/pkg/config"
)

func TestLoad(t *testing.T) {
	type serverConfig struct {
		Addr  string `env:"TEST_SERVER_ADDR" envDefault:":8080"`
		Debug bool   `env:"TEST_SERVER_DEBUG" envDefault:"false"`
	}

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[serverConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("defaults applied and cached", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.False(t, cfg.Debug)

		// Second load of the same type is served from the cache.
		var again serverConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, cfg, again)
	})

	t.Run("env override wins over default", func(t *testing.T) {
		type overrideConfig struct {
			Addr string `env:"TEST_OVERRIDE_ADDR" envDefault:":8080"`
		}
		t.Setenv("TEST_OVERRIDE_ADDR", ":9999")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9999", cfg.Addr)
	})

	t.Run("invalid value surfaces ErrParsingConfig", func(t *testing.T) {
		type badConfig struct {
			Port int `env:"TEST_BAD_PORT"`
		}
		t.Setenv("TEST_BAD_PORT", "not-a-number")

		var cfg badConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	type mustConfig struct {
		Name string `env:"TEST_MUST_NAME" envDefault:"formkit"`
	}

	var cfg mustConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "formkit", cfg.Name)
}
