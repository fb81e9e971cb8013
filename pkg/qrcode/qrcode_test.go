package qrcode_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/pkg/qrcode"
)

const samplePayload = `{"type":"saudi-dates-product","id":"1","variety":"Medjool Dates","producer":"Golden Oasis Farm","location":"Al-Ahsa","grade":"premium","url":"https://example.com/product/1","timestamp":"2024-01-15T10:00:00.000Z"}`

func decodeConfig(t *testing.T, img *qrcode.Image) image.Config {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(img.PNG()))
	require.NoError(t, err)
	return cfg
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("default width", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Render(samplePayload)
		require.NoError(t, err)

		cfg := decodeConfig(t, img)
		assert.Equal(t, 256, cfg.Width)
		assert.Equal(t, 256, cfg.Height)
		assert.Equal(t, 256, img.Width())
		assert.Equal(t, qrcode.Medium, img.Level())
		assert.Equal(t, samplePayload, img.Content())
	})

	t.Run("width override", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Render(samplePayload, qrcode.WithWidth(512))
		require.NoError(t, err)

		cfg := decodeConfig(t, img)
		assert.Equal(t, 512, cfg.Width)
		assert.Equal(t, 512, cfg.Height)
	})

	t.Run("width below symbol size is raised", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Render("hi", qrcode.WithWidth(5), qrcode.WithMargin(0))
		require.NoError(t, err)
		assert.Equal(t, img.Modules(), img.Width())
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Render("")
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Render("hello", qrcode.WithLevel(qrcode.RecoveryLevel(9)))
		assert.ErrorIs(t, err, qrcode.ErrInvalidLevel)
	})
}

func TestRenderColors(t *testing.T) {
	t.Parallel()

	hasColor := func(img image.Image, want color.Color) bool {
		wr, wg, wb, wa := want.RGBA()
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := img.At(x, y).RGBA()
				if r == wr && g == wg && bl == wb && a == wa {
					return true
				}
			}
		}
		return false
	}

	t.Run("brand defaults", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Render("https://example.com/product/1")
		require.NoError(t, err)
		raster, err := img.Raster()
		require.NoError(t, err)

		assert.True(t, hasColor(raster, qrcode.DefaultForeground))
		r, g, b, _ := raster.At(0, 0).RGBA()
		assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	})

	t.Run("custom colors", func(t *testing.T) {
		t.Parallel()
		fg := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}
		bg := color.RGBA{R: 0xF0, G: 0xE0, B: 0xD0, A: 0xFF}
		img, err := qrcode.Render("https://example.com/product/1", qrcode.WithColors(fg, bg))
		require.NoError(t, err)
		raster, err := img.Raster()
		require.NoError(t, err)

		assert.True(t, hasColor(raster, fg))
		assert.True(t, hasColor(raster, bg))
		assert.False(t, hasColor(raster, qrcode.DefaultForeground))
	})
}

func TestRenderCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level qrcode.RecoveryLevel
		size  int
	}{
		{name: "medium", level: qrcode.Medium, size: 2400},
		{name: "high", level: qrcode.High, size: 1400},
		{name: "low", level: qrcode.Low, size: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			content := strings.Repeat("x", tt.size)

			img, err := qrcode.Render(content, qrcode.WithLevel(tt.level))
			require.Error(t, err)
			assert.Nil(t, img)

			var encErr *qrcode.EncodingError
			require.True(t, errors.As(err, &encErr))
			assert.Equal(t, tt.level, encErr.Level)
			assert.Equal(t, tt.size, encErr.Length)
			assert.ErrorIs(t, err, qrcode.ErrContentTooLong)
		})
	}

	t.Run("fits at medium", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Render(strings.Repeat("x", 2000), qrcode.WithLevel(qrcode.Medium))
		assert.NoError(t, err)
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	img, err := qrcode.Render("https://example.com/product/2")
	require.NoError(t, err)

	uri := img.DataURI()
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	data, err := qrcode.ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, img.PNG(), data)
	assert.Equal(t, img.Size(), len(data))

	_, err = qrcode.ParseDataURI("data:image/jpeg;base64,AAAA")
	assert.ErrorIs(t, err, qrcode.ErrInvalidDataURI)

	_, err = qrcode.ParseDataURI("data:image/png;base64,***")
	assert.ErrorIs(t, err, qrcode.ErrInvalidDataURI)
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	img, err := qrcode.Render("payload")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := img.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(img.Size()), n)
	assert.Equal(t, img.PNG(), buf.Bytes())
}
