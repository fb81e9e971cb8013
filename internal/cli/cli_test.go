package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/core/config"
	"github.com/nakhla/datesqr/internal/cli"
	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "local")
	t.Setenv("STORAGE_LOCAL_DIR", dir)
	t.Setenv("BASE_URL", "https://dates.example.sa")
	t.Setenv("LOG_LEVEL", "error")
	config.Reset()
	t.Cleanup(config.Reset)
	return dir
}

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	config.Reset()

	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestGenerateCatalogProduct(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, t.Context(), "generate", "--product", "1", "--print-payload")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1\tM\t256x256\tfile://"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "qr-Medjool-Dates-1.png"), lines[0])

	data, ok := productqr.DecodePayload(lines[1])
	require.True(t, ok)
	assert.Equal(t, "https://dates.example.sa/product/1", data.URL)
	assert.Equal(t, "2024-01-15T00:00:00.000Z", data.HarvestDate)

	raw, err := qrcode.ScanFile(filepath.Join(dir, "qr-Medjool-Dates-1.png"))
	require.NoError(t, err)
	assert.Equal(t, lines[1], raw)
}

func TestGenerateAllArabic(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, t.Context(), "generate", "--all", "--lang", "ar", "--level", "H", "--width", "384")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	for _, name := range []string{
		"qr-تمر-المجهول-1.png",
		"qr-تمر-الصقعي-2.png",
		"qr-تمر-العجوة-3.png",
	} {
		raw, err := qrcode.ScanFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		_, ok := productqr.DecodePayload(raw)
		assert.True(t, ok, name)
	}
}

func TestGenerateAdHocAndScan(t *testing.T) {
	setupEnv(t)
	file := filepath.Join(t.TempDir(), "codes", "khalas.png")

	out, err := run(t, t.Context(), "generate",
		"--id", "9",
		"--variety", "Khalas Dates",
		"--producer", "Palm Grove",
		"--location", "Al-Kharj",
		"--grade", "premium",
		"--out", file,
		"--data-uri",
		"--fg", "#000000",
		"--margin", "4",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "data:image/png;base64,")

	out, err = run(t, t.Context(), "scan", file)
	require.NoError(t, err)

	var res struct {
		Data      productqr.ProductQRData `json:"data"`
		Timestamp string                  `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, productqr.ProductQRData{
		ProductID: "9",
		Variety:   "Khalas Dates",
		Producer:  "Palm Grove",
		Location:  "Al-Kharj",
		Grade:     "premium",
		URL:       "https://dates.example.sa/product/9",
	}, res.Data)
	_, err = time.Parse(productqr.TimestampLayout, res.Timestamp)
	assert.NoError(t, err)
}

func TestGenerateErrors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"nothing selected", []string{"generate"}, cli.ErrNoProductSelected},
		{"missing fields", []string{"generate", "--id", "5", "--variety", "Khalas"}, productqr.ErrMissingField},
		{"bad level", []string{"generate", "--product", "1", "--level", "X"}, qrcode.ErrInvalidLevel},
		{"bad color", []string{"generate", "--product", "1", "--fg", "brown"}, qrcode.ErrInvalidColor},
		{"too long", []string{
			"generate", "--id", "5", "--variety", strings.Repeat("x", 1500),
			"--producer", "p", "--location", "l", "--grade", "g", "--level", "H",
		}, qrcode.ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, t.Context(), tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
		})
	}

	_, err := run(t, t.Context(), "generate", "--product", "42")
	assert.Error(t, err)
}

func TestUnknownStorageDriver(t *testing.T) {
	setupEnv(t)
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := run(t, t.Context(), "generate", "--product", "1")
	assert.ErrorIs(t, err, cli.ErrUnknownStorageDriver)
}

func TestScanRawForeignPayload(t *testing.T) {
	setupEnv(t)

	_, err := run(t, t.Context(), "scan", "--raw", `{"type":"wifi","ssid":"home"}`)
	assert.ErrorIs(t, err, cli.ErrNotProductCode)

	config.Reset()
	assert.Equal(t, 1, cli.Execute(t.Context(), []string{"scan", "--raw", "hello"}))
}

func TestScanRawProductPayload(t *testing.T) {
	setupEnv(t)

	payload := productqr.EncodePayload(productqr.ProductQRData{
		ProductID: "1",
		Variety:   "تمر المجهول",
		Producer:  "مزرعة الواحة الذهبية",
		Location:  "الأحساء",
		Grade:     "premium",
		URL:       "https://dates.example.sa/product/1",
	})
	out, err := run(t, t.Context(), "scan", "--raw", payload)
	require.NoError(t, err)
	assert.Contains(t, out, `"variety": "تمر المجهول"`)
}

func TestServeStopsOnCancel(t *testing.T) {
	setupEnv(t)

	ctx, cancel := context.WithTimeout(t.Context(), 300*time.Millisecond)
	defer cancel()

	_, err := run(t, ctx, "serve", "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	setupEnv(t)

	_, err := run(t, t.Context(), "--log-level", "loud", "scan", "--raw", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrNotProductCode)
}

func TestMain(m *testing.M) {
	// Keep a developer's .env out of the tests.
	if err := os.Chdir(os.TempDir()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
