package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/nakhla/datesqr/core/handler"
	"github.com/nakhla/datesqr/core/i18n"
)

type (
	languageContextKey   struct{}
	translatorContextKey struct{}
)

// LanguageCookie remembers an explicit ?lang= choice.
const LanguageCookie = "lang"

// LanguageConfig configures LanguageWithConfig.
type LanguageConfig struct {
	Skip func(ctx handler.Context) bool
	// I18n is required.
	I18n *i18n.I18n
	// Namespace of the stored Translator. Required.
	Namespace string
	// QueryParam defaults to "lang". Empty string after defaults disables it.
	QueryParam string
	// DisableCookie stops remembering the query choice.
	DisableCookie bool
}

// Language picks the request language from ?lang=, then the lang cookie,
// then Accept-Language, and stores it with a Translator for namespace.
func Language[C handler.Context](tr *i18n.I18n, namespace string) handler.Middleware[C] {
	return LanguageWithConfig[C](LanguageConfig{I18n: tr, Namespace: namespace})
}

func LanguageWithConfig[C handler.Context](cfg LanguageConfig) handler.Middleware[C] {
	if cfg.I18n == nil {
		panic("language middleware: i18n instance is required")
	}
	if cfg.Namespace == "" {
		panic("language middleware: namespace is required")
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			lang, fromQuery := "", false

			if q := req.URL.Query().Get(cfg.QueryParam); q != "" && cfg.I18n.Supports(q) {
				lang, fromQuery = q, true
			} else if c, err := req.Cookie(LanguageCookie); err == nil && cfg.I18n.Supports(c.Value) {
				lang = c.Value
			} else {
				lang = cfg.I18n.Match(req.Header.Get("Accept-Language"))
			}

			ctx.SetValue(languageContextKey{}, lang)
			ctx.SetValue(translatorContextKey{}, i18n.NewTranslator(cfg.I18n, lang, cfg.Namespace))

			resp := next(ctx)
			if !fromQuery || cfg.DisableCookie || resp == nil {
				return resp
			}
			return func(w http.ResponseWriter, r *http.Request) error {
				http.SetCookie(w, &http.Cookie{
					Name:     LanguageCookie,
					Value:    lang,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				return resp(w, r)
			}
		}
	}
}

// GetLanguage returns the language chosen by Language.
func GetLanguage(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageContextKey{}).(string)
	return lang, ok
}

// GetTranslator returns the Translator stored by Language.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	tr, ok := ctx.Value(translatorContextKey{}).(*i18n.Translator)
	return tr, ok
}
