// Package i18n provides immutable translation tables with plural forms and
// language negotiation.
//
//	tr, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "product", map[string]any{
//			"qr": map[string]any{
//				"title":  "Product QR Code",
//				"failed": "Failed to generate QR code",
//			},
//			"count": map[string]string{"one": "1 product", "other": "%{count} products"},
//		}),
//		i18n.WithTranslations("ar", "product", map[string]any{
//			"qr": map[string]any{
//				"title":  "رمز QR للمنتج",
//				"failed": "فشل في إنشاء رمز QR",
//			},
//		}),
//	)
//
//	tr.T("ar", "product", "qr.failed")     // "فشل في إنشاء رمز QR"
//	tr.Tn("en", "product", "count", 3)     // "3 products"
//	tr.T("ar", "product", "count.other")   // falls back to English
//
// Keys missing in the requested language fall back to the default language,
// then to the key itself. Placeholders use %{name}.
//
// Match negotiates an Accept-Language header against the configured languages
// using golang.org/x/text/language. Direction reports "rtl" for Arabic script
// languages so templates can set the dir attribute.
package i18n
