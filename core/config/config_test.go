package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/core/config"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

type cachedConfig struct {
	Name string `env:"DATESQR_TEST_NAME" envDefault:"datesqr"`
}

type requiredConfig struct {
	Token string `env:"DATESQR_TEST_TOKEN,required"`
}

type nestedConfig struct {
	BaseURL string `env:"DATESQR_TEST_BASE_URL" envDefault:"http://localhost:8080"`
	QR      qrcode.Config
}

func TestLoadCachesPerType(t *testing.T) {
	config.Reset()
	t.Setenv("DATESQR_TEST_NAME", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Name)

	t.Setenv("DATESQR_TEST_NAME", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Name)

	config.Reset()
	var c cachedConfig
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "second", c.Name)
}

func TestLoadRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATESQR_TEST_TOKEN")

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}

func TestLoadNil(t *testing.T) {
	var cfg *cachedConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilTarget)
	assert.ErrorIs(t, config.Parse(cfg), config.ErrNilTarget)
}

func TestParseNestedQRConfig(t *testing.T) {
	t.Setenv("QR_ERROR_CORRECTION", "high")
	t.Setenv("QR_WIDTH", "512")

	var cfg nestedConfig
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, qrcode.High, cfg.QR.Level)
	assert.Equal(t, 512, cfg.QR.Width)
	assert.Equal(t, 1, cfg.QR.Margin)
	assert.Equal(t, "#8B4513", cfg.QR.Foreground)
}
