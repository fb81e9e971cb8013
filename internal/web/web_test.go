package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakhla/datesqr/core/router"
	"github.com/nakhla/datesqr/core/storage"
	"github.com/nakhla/datesqr/internal/catalog"
	"github.com/nakhla/datesqr/internal/web"
	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

const baseURL = "https://dates.example.sa"

func newWeb(t *testing.T, opts ...web.Option) *web.Web {
	t.Helper()
	w, err := web.New(append([]web.Option{web.WithBaseURL(baseURL)}, opts...)...)
	require.NoError(t, err)
	return w
}

type request struct {
	method      string
	target      string
	body        []byte
	contentType string
	lang        string
}

func do(t *testing.T, h http.Handler, r request) *httptest.ResponseRecorder {
	t.Helper()
	if r.method == "" {
		r.method = http.MethodGet
	}
	req := httptest.NewRequest(r.method, r.target, bytes.NewReader(r.body))
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.lang != "" {
		req.Header.Set("Accept-Language", r.lang)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	routes := newWeb(t).Routes()
	for _, want := range []router.Route{
		{Method: http.MethodGet, Pattern: "/health"},
		{Method: http.MethodGet, Pattern: "/health/ready"},
		{Method: http.MethodGet, Pattern: "/products"},
		{Method: http.MethodGet, Pattern: "/products/{id}"},
		{Method: http.MethodGet, Pattern: "/products/{id}/qr.png"},
		{Method: http.MethodGet, Pattern: "/products/{id}/qr/state"},
		{Method: http.MethodPost, Pattern: "/products/{id}/qr/refresh"},
		{Method: http.MethodPost, Pattern: "/products/{id}/qr/archive"},
		{Method: http.MethodPost, Pattern: "/qr/decode"},
	} {
		assert.Contains(t, routes, want)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := do(t, newWeb(t), request{target: "/health"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeJSON(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	rec := do(t, newWeb(t), request{target: "/health/ready"})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, map[string]any{"qr": "ok"}, body["checks"])

	failing := newWeb(t, web.WithReadinessCheck("storage", func(context.Context) error {
		return errors.New("bucket missing")
	}))
	rec = do(t, failing, request{target: "/health/ready"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "failed", decodeJSON(t, rec)["checks"].(map[string]any)["storage"])
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	w := newWeb(t)

	rec := do(t, w, request{target: "/products"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "en", body["language"])
	assert.Equal(t, "ltr", body["dir"])
	products := body["products"].([]any)
	require.Len(t, products, 3)
	assert.Equal(t, "Medjool Dates", products[0].(map[string]any)["variety"])

	rec = do(t, w, request{target: "/products", lang: "ar-SA,ar;q=0.9,en;q=0.5"})
	body = decodeJSON(t, rec)
	assert.Equal(t, "ar", body["language"])
	assert.Equal(t, "rtl", body["dir"])
	assert.Equal(t, "تمر المجهول", body["products"].([]any)[0].(map[string]any)["variety"])
}

func TestProductPage(t *testing.T) {
	t.Parallel()

	w := newWeb(t)

	t.Run("english", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))

		html := rec.Body.String()
		assert.Contains(t, html, `dir="ltr"`)
		assert.Contains(t, html, "Product QR Code")
		assert.Contains(t, html, `src="data:image/png;base64,`)
		assert.Contains(t, html, "Golden Oasis Farm")
		assert.Contains(t, html, "January 15, 2024")
		assert.Contains(t, html, "365 days")
		assert.Contains(t, html, `download="qr-Medjool-Dates-1.png"`)
	})

	t.Run("arabic", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/2?lang=ar"})
		require.Equal(t, http.StatusOK, rec.Code)

		html := rec.Body.String()
		assert.Contains(t, html, `dir="rtl"`)
		assert.Contains(t, html, "رمز QR للمنتج")
		assert.Contains(t, html, "تمر الصقعي")
		assert.Contains(t, html, "مزرعة النخيل الملكية")
		assert.Contains(t, html, `src="data:image/png;base64,`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/404", lang: "ar"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, "not_found", body["code"])
		assert.Equal(t, "المنتج غير موجود", body["message"])
	})
}

func TestProductPageRenderFailure(t *testing.T) {
	t.Parallel()

	w := newWeb(t, web.WithBaseURL("https://"+strings.Repeat("x", 3000)+".example"))

	rec := do(t, w, request{target: "/products/1"})
	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, "Failed to generate QR code")
	assert.NotContains(t, html, "data:image/png")
	assert.Contains(t, html, `href="/products/1?lang=en"`)

	rec = do(t, w, request{target: "/products/1?lang=ar"})
	assert.Contains(t, rec.Body.String(), "فشل في إنشاء رمز QR")
}

func TestProductImage(t *testing.T) {
	t.Parallel()

	w := newWeb(t)
	medjool, err := catalog.Find("1")
	require.NoError(t, err)

	t.Run("scans back to product data", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/1/qr.png"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, qrcode.MIMEType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "inline")
		assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")

		raw, err := qrcode.ScanPNG(rec.Body.Bytes())
		require.NoError(t, err)
		got, ok := productqr.DecodePayload(raw)
		require.True(t, ok)
		assert.Equal(t, catalog.QRData(medjool, "en", baseURL), got)
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/1/qr.png?width=512&level=H&margin=4"})
		require.Equal(t, http.StatusOK, rec.Code)
		cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 512, cfg.Width)
		assert.Equal(t, 512, cfg.Height)
	})

	t.Run("download", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/1/qr.png?download=1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="qr-Medjool-Dates-1.png"`, rec.Header().Get("Content-Disposition"))
	})

	t.Run("arabic download name", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/3/qr.png?download=true&lang=ar"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "filename*=UTF-8''")
	})

	t.Run("invalid parameters", func(t *testing.T) {
		t.Parallel()
		for _, target := range []string{
			"/products/1/qr.png?width=abc",
			"/products/1/qr.png?width=0",
			"/products/1/qr.png?width=99999",
			"/products/1/qr.png?level=Z",
			"/products/1/qr.png?margin=-1",
		} {
			rec := do(t, w, request{target: target})
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()
		rec := do(t, w, request{target: "/products/9/qr.png"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductImageCapacityOverflow(t *testing.T) {
	t.Parallel()

	w := newWeb(t, web.WithBaseURL("https://"+strings.Repeat("x", 3000)+".example"))
	rec := do(t, w, request{target: "/products/1/qr.png?level=H"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "content_too_long", body["code"])
	assert.Equal(t, "H", body["details"].(map[string]any)["level"])
}

func TestDisplayRefreshAndState(t *testing.T) {
	t.Parallel()

	w := newWeb(t)

	rec := do(t, w, request{target: "/products/2/qr/state"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "idle", decodeJSON(t, rec)["status"])

	rec = do(t, w, request{method: http.MethodPost, target: "/products/2/qr/refresh"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	started := decodeJSON(t, rec)
	assert.EqualValues(t, 1, started["seq"])
	assert.Contains(t, []any{"loading", "ready"}, started["status"])

	assert.Eventually(t, func() bool {
		return w.Board().Snapshot("2").Status == productqr.StatusReady
	}, 5*time.Second, 10*time.Millisecond)

	rec = do(t, w, request{target: "/products/2/qr/state"})
	state := decodeJSON(t, rec)
	assert.Equal(t, "ready", state["status"])
	assert.Equal(t, "qr-Sukkari-Dates-2.png", state["filename"])
	assert.True(t, strings.HasPrefix(state["dataUri"].(string), "data:image/png;base64,"))

	raw, err := qrcode.ScanDataURI(state["dataUri"].(string))
	require.NoError(t, err)
	assert.Equal(t, state["payload"], raw)

	rec = do(t, w, request{method: http.MethodPost, target: "/products/2/qr/refresh?width=nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, w, request{method: http.MethodPost, target: "/products/77/qr/refresh"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDisplayErrorState(t *testing.T) {
	t.Parallel()

	w := newWeb(t, web.WithBaseURL("https://"+strings.Repeat("x", 3000)+".example"))
	rec := do(t, w, request{method: http.MethodPost, target: "/products/1/qr/refresh?lang=ar"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	assert.Eventually(t, func() bool {
		return w.Board().Snapshot("1").Status == productqr.StatusError
	}, 5*time.Second, 10*time.Millisecond)

	rec = do(t, w, request{target: "/products/1/qr/state?lang=ar"})
	state := decodeJSON(t, rec)
	assert.Equal(t, "error", state["status"])
	assert.Equal(t, "فشل في إنشاء رمز QR", state["error"])
}

func TestArchive(t *testing.T) {
	t.Parallel()

	t.Run("saves to storage", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := storage.NewLocal(dir, storage.WithBaseURL("https://cdn.example.sa/qr"))
		require.NoError(t, err)

		w := newWeb(t, web.WithGenerator(productqr.NewGenerator(productqr.WithStorage(store))))
		rec := do(t, w, request{method: http.MethodPost, target: "/products/1/qr/archive"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decodeJSON(t, rec)
		assert.Equal(t, "products/1/en/qr-Medjool-Dates-1.png", body["key"])
		assert.Equal(t, "https://cdn.example.sa/qr/products/1/en/qr-Medjool-Dates-1.png", body["url"])
		assert.Equal(t, qrcode.MIMEType, body["mimeType"])

		data, err := os.ReadFile(filepath.Join(dir, "products", "1", "en", "qr-Medjool-Dates-1.png"))
		require.NoError(t, err)
		raw, err := qrcode.ScanPNG(data)
		require.NoError(t, err)
		_, ok := productqr.DecodePayload(raw)
		assert.True(t, ok)
	})

	t.Run("without storage", func(t *testing.T) {
		t.Parallel()

		rec := do(t, newWeb(t), request{method: http.MethodPost, target: "/products/1/qr/archive"})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Archiving is not configured", decodeJSON(t, rec)["message"])
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	w := newWeb(t)
	sukkari, err := catalog.Find("2")
	require.NoError(t, err)
	data := catalog.QRData(sukkari, "ar", baseURL)
	payload := productqr.EncodePayload(data)

	res, err := productqr.NewGenerator().Generate(t.Context(), data)
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        []byte
		contentType string
	}{
		{"plain text", []byte(payload), "text/plain; charset=utf-8"},
		{"no content type", []byte(payload), ""},
		{"json", []byte(`{"payload":` + jsonString(t, payload) + `}`), "application/json"},
		{"png", res.Image.PNG(), "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, w, request{method: http.MethodPost, target: "/qr/decode", body: tt.body, contentType: tt.contentType})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var out struct {
				Data      productqr.ProductQRData `json:"data"`
				Timestamp string                  `json:"timestamp"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, data, out.Data)
			assert.NotEmpty(t, out.Timestamp)
		})
	}
}

func jsonString(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return string(b)
}

func TestDecodeRejections(t *testing.T) {
	t.Parallel()

	w := newWeb(t)

	tests := []struct {
		name        string
		body        []byte
		contentType string
		lang        string
		status      int
		code        string
		message     string
	}{
		{
			name:   "foreign json",
			body:   []byte(`{"type":"wifi","ssid":"home"}`),
			status: http.StatusUnprocessableEntity,
			code:   "not_product_code",
		},
		{
			name:    "plain url in arabic",
			body:    []byte(`https://example.com/not-a-product`),
			lang:    "ar",
			status:  http.StatusUnprocessableEntity,
			code:    "not_product_code",
			message: "رمز QR هذا لا يخص منتج تمور",
		},
		{
			name:        "image without code",
			body:        []byte("not really a png"),
			contentType: "image/png",
			status:      http.StatusUnprocessableEntity,
			code:        "no_qr_code",
		},
		{
			name:   "empty",
			body:   []byte("  "),
			status: http.StatusBadRequest,
			code:   "bad_request",
		},
		{
			name:        "bad json",
			body:        []byte(`{"payload":`),
			contentType: "application/json",
			status:      http.StatusBadRequest,
			code:        "bad_request",
		},
		{
			name:        "unsupported type",
			body:        []byte("x"),
			contentType: "application/xml",
			status:      http.StatusUnsupportedMediaType,
			code:        "unsupported_media_type",
		},
		{
			name:   "too large",
			body:   bytes.Repeat([]byte("a"), int(web.MaxDecodeBody)+1),
			status: http.StatusRequestEntityTooLarge,
			code:   "request_entity_too_large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, w, request{
				method:      http.MethodPost,
				target:      "/qr/decode",
				body:        tt.body,
				contentType: tt.contentType,
				lang:        tt.lang,
			})
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decodeJSON(t, rec)
			assert.Equal(t, tt.code, body["code"])
			if tt.message != "" {
				assert.Equal(t, tt.message, body["message"])
			}
		})
	}
}
