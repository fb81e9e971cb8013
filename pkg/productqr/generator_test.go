package productqr_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/core/storage"
	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

func TestGenerateDefaults(t *testing.T) {
	t.Parallel()

	gen := productqr.NewGenerator(productqr.WithCodec(frozenCodec()))
	res, err := gen.Generate(context.Background(), medjool())
	require.NoError(t, err)

	assert.Equal(t, medjool(), res.Data)
	assert.Equal(t, "qr-Medjool-Dates-1.png", res.Filename)
	assert.Equal(t, frozenCodec().Encode(medjool()), res.Payload)
	assert.Equal(t, qrcode.DefaultWidth, res.Image.Width())
	assert.Equal(t, qrcode.Medium, res.Image.Level())
	assert.True(t, strings.HasPrefix(res.DataURI(), "data:image/png;base64,"))

	scanned, err := qrcode.ScanPNG(res.Image.PNG())
	require.NoError(t, err)
	assert.Equal(t, res.Payload, scanned)

	got, ok := productqr.DecodePayload(scanned)
	require.True(t, ok)
	assert.Equal(t, medjool(), got)
}

func TestGenerateArabicThroughImage(t *testing.T) {
	t.Parallel()

	data := productqr.ProductQRData{
		ProductID:   "2",
		Variety:     "تمر السكري",
		Producer:    "مزارع القصيم",
		Location:    "القصيم",
		Grade:       "ممتاز",
		HarvestDate: "2024-02-10T00:00:00.000Z",
		URL:         "https://example.com/product/2",
	}

	gen := productqr.NewGenerator(productqr.WithRenderOptions(qrcode.WithWidth(512)))
	res, err := gen.Generate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 512, res.Image.Width())

	scanned, err := qrcode.ScanPNG(res.Image.PNG())
	require.NoError(t, err)
	got, ok := productqr.DecodePayload(scanned)
	require.True(t, ok)
	assert.Equal(t, data, got)
}

func TestGenerateCallOptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	gen := productqr.NewGenerator(productqr.WithRenderOptions(qrcode.WithWidth(300), qrcode.WithLevel(qrcode.Low)))
	res, err := gen.Generate(context.Background(), medjool(), qrcode.WithLevel(qrcode.High))
	require.NoError(t, err)

	assert.Equal(t, 300, res.Image.Width())
	assert.Equal(t, qrcode.High, res.Image.Level())
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	data := medjool()
	data.URL = ""

	_, err := productqr.NewGenerator().Generate(context.Background(), data)
	require.ErrorIs(t, err, productqr.ErrMissingField)
	assert.Contains(t, err.Error(), "url")
}

func TestGenerateCapacityOverflow(t *testing.T) {
	t.Parallel()

	data := medjool()
	data.Variety = strings.Repeat("x", 1500)

	_, err := productqr.NewGenerator().Generate(context.Background(), data, qrcode.WithLevel(qrcode.High))
	require.Error(t, err)

	var encErr *qrcode.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, qrcode.High, encErr.Level)
	assert.Greater(t, encErr.Length, 1500)
	assert.ErrorIs(t, err, qrcode.ErrContentTooLong)

	// The same record fits at low error correction.
	_, err = productqr.NewGenerator().Generate(context.Background(), data, qrcode.WithLevel(qrcode.Low))
	assert.NoError(t, err)
}

func TestGenerateCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := productqr.NewGenerator().Generate(ctx, medjool())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocal(dir, storage.WithBaseURL("https://cdn.example.com/qr"))
	require.NoError(t, err)

	gen := productqr.NewGenerator(productqr.WithStorage(store))
	res, err := gen.Generate(context.Background(), medjool())
	require.NoError(t, err)

	file, err := gen.Save(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, "qr-Medjool-Dates-1.png", file.RelativePath)
	assert.Equal(t, int64(res.Image.Size()), file.Size)
	assert.Equal(t, "https://cdn.example.com/qr/qr-Medjool-Dates-1.png", gen.URL(file.RelativePath))

	written, err := os.ReadFile(filepath.Join(dir, "qr-Medjool-Dates-1.png"))
	require.NoError(t, err)
	assert.Equal(t, res.Image.PNG(), written)

	file, err = gen.SaveAs(context.Background(), res, "archive/1/latest.png")
	require.NoError(t, err)
	assert.Equal(t, "archive/1/latest.png", file.RelativePath)
	assert.FileExists(t, filepath.Join(dir, "archive", "1", "latest.png"))
}

func TestSaveErrors(t *testing.T) {
	t.Parallel()

	res, err := productqr.NewGenerator().Generate(context.Background(), medjool())
	require.NoError(t, err)

	_, err = productqr.NewGenerator().Save(context.Background(), res)
	assert.ErrorIs(t, err, productqr.ErrNoStorage)
	assert.Empty(t, productqr.NewGenerator().URL("x.png"))

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	_, err = productqr.NewGenerator(productqr.WithStorage(store)).Save(context.Background(), nil)
	assert.ErrorIs(t, err, productqr.ErrNilResult)
}
