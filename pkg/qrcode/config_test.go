package qrcode_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/pkg/qrcode"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"m", qrcode.Medium},
		{" Medium ", qrcode.Medium},
		{"Q", qrcode.Quartile},
		{"quartile", qrcode.Quartile},
		{"H", qrcode.High},
		{"HIGH", qrcode.High},
	}
	for _, tt := range tests {
		got, err := qrcode.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := qrcode.ParseLevel("X")
	assert.ErrorIs(t, err, qrcode.ErrInvalidLevel)
}

func TestRecoveryLevelText(t *testing.T) {
	t.Parallel()

	var lvl qrcode.RecoveryLevel
	require.NoError(t, lvl.UnmarshalText([]byte("q")))
	assert.Equal(t, qrcode.Quartile, lvl)

	text, err := lvl.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Q", string(text))

	assert.Error(t, lvl.UnmarshalText([]byte("bogus")))
	assert.Equal(t, qrcode.Quartile, lvl)

	_, err = qrcode.RecoveryLevel(7).MarshalText()
	assert.ErrorIs(t, err, qrcode.ErrInvalidLevel)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := qrcode.ParseColor("#8B4513")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}, c)

	c, err = qrcode.ParseColor("fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c)

	_, err = qrcode.ParseColor("brown")
	assert.ErrorIs(t, err, qrcode.ErrInvalidColor)
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults match package defaults", func(t *testing.T) {
		t.Parallel()
		opts, err := qrcode.DefaultConfig().Options()
		require.NoError(t, err)

		img, err := qrcode.Render("config", opts...)
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultWidth, img.Width())
		assert.Equal(t, qrcode.Medium, img.Level())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		cfg := qrcode.Config{Level: qrcode.High, Margin: 2, Foreground: "#000000", Width: 300}
		opts, err := cfg.Options()
		require.NoError(t, err)

		img, err := qrcode.Render("config", opts...)
		require.NoError(t, err)
		assert.Equal(t, 300, img.Width())
		assert.Equal(t, qrcode.High, img.Level())
	})

	t.Run("bad color", func(t *testing.T) {
		t.Parallel()
		cfg := qrcode.DefaultConfig()
		cfg.Background = "#zzzzzz"
		_, err := cfg.Options()
		assert.ErrorIs(t, err, qrcode.ErrInvalidColor)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Parallel()
		cfg := qrcode.DefaultConfig()
		cfg.Level = qrcode.RecoveryLevel(-1)
		_, err := cfg.Options()
		assert.ErrorIs(t, err, qrcode.ErrInvalidLevel)
	})
}
