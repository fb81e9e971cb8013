package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nakhla/datesqr/core/handler"
	"github.com/nakhla/datesqr/core/i18n"
	"github.com/nakhla/datesqr/core/logger"
	"github.com/nakhla/datesqr/core/response"
	"github.com/nakhla/datesqr/internal/catalog"
	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

// selfTest renders and scans a probe code.
func selfTest(context.Context) error {
	const probe = "datesqr-ready"
	img, err := qrcode.Render(probe)
	if err != nil {
		return err
	}
	got, err := qrcode.ScanPNG(img.PNG())
	if err != nil {
		return err
	}
	if got != probe {
		return fmt.Errorf("self test scanned %q", got)
	}
	return nil
}

type productList struct {
	Language string          `json:"language"`
	Dir      string          `json:"dir"`
	Products []catalog.Entry `json:"products"`
}

func (w *Web) listProducts(c ctx) handler.Response {
	t := w.translator(c)
	all := catalog.All()
	entries := make([]catalog.Entry, 0, len(all))
	for _, p := range all {
		entries = append(entries, p.Entry(t.Language()))
	}
	return response.JSON(productList{
		Language: t.Language(),
		Dir:      t.Dir(),
		Products: entries,
	})
}

func (w *Web) product(c ctx) (catalog.Product, *i18n.Translator, error) {
	t := w.translator(c)
	p, err := catalog.Find(c.Param("id"))
	if err != nil {
		return p, t, response.ErrNotFound.
			WithMessage(t.T("errors.product_not_found")).
			WithDetails(map[string]any{"id": c.Param("id")})
	}
	return p, t, nil
}

type productPage struct {
	Lang           string
	Dir            string
	T              *i18n.Translator
	Product        catalog.Entry
	Data           productqr.ProductQRData
	Harvest        string
	Weight         string
	RetailPrice    string
	WholesalePrice string
	ShelfLife      string
	QR             template.URL
	Alt            string
	Filename       string
	Error          string
	RetryURL       string
	DownloadURL    string
	SwitchURL      string
}

func (w *Web) productPage(c ctx) handler.Response {
	p, t, err := w.product(c)
	if err != nil {
		return response.Error(err)
	}

	lang := t.Language()
	data := catalog.QRData(p, lang, w.baseURL)
	page := productPage{
		Lang:           lang,
		Dir:            t.Dir(),
		T:              t,
		Product:        p.Entry(lang),
		Data:           data,
		Weight:         t.T("product.weight_value", i18n.M{"grams": p.WeightGrams}),
		RetailPrice:    t.T("product.price_value", i18n.M{"amount": p.RetailPrice}),
		WholesalePrice: t.T("product.price_value", i18n.M{"amount": p.WholesalePrice}),
		ShelfLife:      t.Tn("product.shelf_life_days", p.ShelfLifeDays),
		Alt:            t.T("qr.alt", i18n.M{"variety": data.Variety}),
		RetryURL:       fmt.Sprintf("/products/%s?lang=%s", url.PathEscape(p.ID), lang),
		DownloadURL:    fmt.Sprintf("/products/%s/qr.png?download=1&lang=%s", url.PathEscape(p.ID), lang),
		SwitchURL:      fmt.Sprintf("/products/%s?lang=%s", url.PathEscape(p.ID), otherLanguage(lang)),
	}
	if !p.HarvestDate.IsZero() {
		page.Harvest = t.FormatDate(p.HarvestDate)
	}

	res, err := w.generator.Generate(c, data, w.renderOptionsFromQuery(c)...)
	if err != nil {
		w.logger.WarnContext(c, "product page rendered without qr",
			logger.Component("web"),
			logger.ProductID(p.ID),
			logger.Error(err),
		)
		page.Error = t.T("qr.failed")
	} else {
		page.QR = template.URL(res.DataURI())
		page.Filename = res.Filename
	}

	return response.WithHeaders(
		response.Template(templates, "product", page),
		map[string]string{"Content-Language": lang},
	)
}

// The page ignores malformed options; the PNG endpoint rejects them.
func (w *Web) renderOptionsFromQuery(c ctx) []qrcode.Option {
	opts, _ := renderOptions(c.Request().URL.Query())
	return opts
}

func otherLanguage(lang string) string {
	if lang == "ar" {
		return "en"
	}
	return "ar"
}

// renderOptions reads width, level and margin. The returned string names the
// first invalid parameter.
func renderOptions(q url.Values) ([]qrcode.Option, string) {
	var opts []qrcode.Option

	if v := q.Get("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxWidth {
			return nil, "width"
		}
		opts = append(opts, qrcode.WithWidth(n))
	}
	if v := q.Get("level"); v != "" {
		level, err := qrcode.ParseLevel(v)
		if err != nil {
			return nil, "level"
		}
		opts = append(opts, qrcode.WithLevel(level))
	}
	if v := q.Get("margin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxMargin {
			return nil, "margin"
		}
		opts = append(opts, qrcode.WithMargin(n))
	}
	return opts, ""
}

func (w *Web) invalidParameter(t *i18n.Translator, name string) error {
	return response.ErrBadRequest.
		WithMessage(t.T("errors.invalid_parameter", i18n.M{"name": name})).
		WithDetails(map[string]any{"parameter": name})
}

// renderError maps generator failures to HTTP errors.
func (w *Web) renderError(t *i18n.Translator, err error) error {
	var encErr *qrcode.EncodingError
	if errors.As(err, &encErr) {
		return response.NewHTTPError(http.StatusUnprocessableEntity, "content_too_long", t.T("errors.content_too_long")).
			WithDetails(map[string]any{"level": encErr.Level.String(), "length": encErr.Length})
	}
	if errors.Is(err, productqr.ErrMissingField) || errors.Is(err, productqr.ErrInvalidText) {
		return response.ErrUnprocessableEntity.WithMessage(t.T("qr.failed")).WithError(err)
	}
	return fmt.Errorf("%s: %w", t.T("qr.failed"), err)
}

func (w *Web) productImage(c ctx) handler.Response {
	p, t, err := w.product(c)
	if err != nil {
		return response.Error(err)
	}

	q := c.Request().URL.Query()
	opts, invalid := renderOptions(q)
	if invalid != "" {
		return response.Error(w.invalidParameter(t, invalid))
	}

	res, err := w.generator.Generate(c, catalog.QRData(p, t.Language(), w.baseURL), opts...)
	if err != nil {
		return response.Error(w.renderError(t, err))
	}

	png := res.Image.PNG()
	resp := response.Inline(png, res.Filename, qrcode.MIMEType)
	if download, _ := strconv.ParseBool(q.Get("download")); download {
		resp = response.Attachment(png, res.Filename, qrcode.MIMEType)
	}
	// Each render carries a fresh timestamp.
	return response.WithCache(resp, 0)
}

type stateView struct {
	Status   productqr.Status `json:"status"`
	Seq      uint64           `json:"seq"`
	Filename string           `json:"filename,omitempty"`
	Payload  string           `json:"payload,omitempty"`
	DataURI  string           `json:"dataUri,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func newStateView(s productqr.State, t *i18n.Translator) stateView {
	v := stateView{Status: s.Status, Seq: s.Seq}
	switch s.Status {
	case productqr.StatusReady:
		if s.Result != nil {
			v.Filename = s.Result.Filename
			v.Payload = s.Result.Payload
			v.DataURI = s.Result.DataURI()
		}
	case productqr.StatusError:
		v.Error = t.T("qr.failed")
	}
	return v
}

func (w *Web) refreshDisplay(c ctx) handler.Response {
	p, t, err := w.product(c)
	if err != nil {
		return response.Error(err)
	}
	opts, invalid := renderOptions(c.Request().URL.Query())
	if invalid != "" {
		return response.Error(w.invalidParameter(t, invalid))
	}

	w.board.Refresh(c, p.ID, catalog.QRData(p, t.Language(), w.baseURL), opts...)
	return response.JSONWithStatus(newStateView(w.board.Snapshot(p.ID), t), http.StatusAccepted)
}

func (w *Web) displayState(c ctx) handler.Response {
	p, t, err := w.product(c)
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(newStateView(w.board.Snapshot(p.ID), t))
}

type archiveResult struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mimeType"`
}

func (w *Web) archive(c ctx) handler.Response {
	p, t, err := w.product(c)
	if err != nil {
		return response.Error(err)
	}

	res, err := w.generator.Generate(c, catalog.QRData(p, t.Language(), w.baseURL))
	if err != nil {
		return response.Error(w.renderError(t, err))
	}

	key := "products/" + p.ID + "/" + t.Language() + "/" + res.Filename
	file, err := w.generator.SaveAs(c, res, key)
	if errors.Is(err, productqr.ErrNoStorage) {
		return response.Error(response.ErrServiceUnavailable.WithMessage(t.T("errors.storage_disabled")))
	}
	if err != nil {
		return response.Error(err)
	}

	return response.JSONWithStatus(archiveResult{
		Key:      file.RelativePath,
		URL:      w.generator.URL(file.RelativePath),
		Size:     file.Size,
		MIMEType: file.MIMEType,
	}, http.StatusCreated)
}

type decodeRequest struct {
	Payload string `json:"payload"`
}

type decodeResult struct {
	Data      productqr.ProductQRData `json:"data"`
	Timestamp string                  `json:"timestamp,omitempty"`
}

// decode accepts a raw payload as text/plain, {"payload": "..."} as JSON, or a
// PNG image of the code.
func (w *Web) decode(c ctx) handler.Response {
	t := w.translator(c)
	req := c.Request()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return response.Error(response.ErrRequestEntityTooLarge.WithDetails(map[string]any{"limit": tooLarge.Limit}))
		}
		return response.Error(response.ErrBadRequest.WithError(err))
	}

	mediaType, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	var raw string
	switch mediaType {
	case qrcode.MIMEType:
		raw, err = qrcode.ScanPNG(body)
		if err != nil {
			return response.Error(response.NewHTTPError(http.StatusUnprocessableEntity, "no_qr_code", t.T("errors.no_qr_code")))
		}
	case "application/json":
		var in decodeRequest
		if err := json.Unmarshal(body, &in); err != nil {
			return response.Error(response.ErrBadRequest.WithError(err))
		}
		raw = in.Payload
	case "", "text/plain":
		if !utf8.Valid(body) {
			return response.Error(response.ErrBadRequest.WithMessage(t.T("errors.not_product_code")))
		}
		raw = string(body)
	default:
		return response.Error(response.ErrUnsupportedMediaType.WithDetails(map[string]any{"contentType": mediaType}))
	}

	if strings.TrimSpace(raw) == "" {
		return response.Error(response.ErrBadRequest.WithMessage(t.T("errors.empty_payload")))
	}

	payload, ok := productqr.ParsePayload(raw)
	if !ok {
		return response.Error(response.NewHTTPError(http.StatusUnprocessableEntity, "not_product_code", t.T("errors.not_product_code")))
	}
	return response.JSON(decodeResult{Data: payload.Data(), Timestamp: payload.Timestamp})
}
