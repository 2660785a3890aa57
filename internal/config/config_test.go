package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func TestDecode_AppliesDefaults(t *testing.T) {
	v := newViper(t, `
DATABASE:
  POSTGRES:
    DSN: postgres://localhost/repro
IDENTITY:
  PASETO:
    HEX_KEY: abc
`)

	cfg, err := decode(v)

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.APP.Port)
	assert.Equal(t, "Europe/Istanbul", cfg.APP.Timezone)
	assert.Equal(t, 10*time.Hour, cfg.LongRunningThreshold())
	assert.Equal(t, 30*time.Second, cfg.SessionCacheTTL())
	assert.Equal(t, 366, cfg.TRACKING.MaxReportDays)
	assert.Equal(t, "Europe/Istanbul", cfg.Location().String())
}

func TestDecode_MissingDSN(t *testing.T) {
	v := newViper(t, `
IDENTITY:
  PASETO:
    HEX_KEY: abc
`)

	cfg, err := decode(v)

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "DSN")
}

func TestDecode_InvalidTimezone(t *testing.T) {
	v := newViper(t, `
APP:
  TIMEZONE: Mars/Olympus
DATABASE:
  POSTGRES:
    DSN: postgres://localhost/repro
IDENTITY:
  PASETO:
    HEX_KEY: abc
`)

	_, err := decode(v)

	assert.ErrorContains(t, err, "Zeitzone")
}
