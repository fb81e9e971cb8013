package web

import "github.com/nakhla/datesqr/core/i18n"

// Namespace holds the web UI messages.
const Namespace = "web"

var messagesEN = map[string]any{
	"qr": map[string]any{
		"title":      "Product QR Code",
		"failed":     "Failed to generate QR code",
		"loading":    "Generating QR code...",
		"regenerate": "Regenerate",
		"download":   "Download",
		"archive":    "Archive",
		"alt":        "QR code for %{variety}",
	},
	"product": map[string]any{
		"variety":         "Variety",
		"producer":        "Producer",
		"location":        "Location",
		"grade":           "Grade",
		"harvest":         "Harvest Date",
		"weight":          "Weight",
		"weight_value":    "%{grams} g",
		"retail_price":    "Retail Price",
		"wholesale_price": "Wholesale Price",
		"price_value":     "%{amount} SAR",
		"color":           "Color",
		"packaging":       "Packaging",
		"certificates":    "Certificates",
		"shelf_life":      "Shelf Life",
		"shelf_life_days": map[string]string{
			"one":   "1 day",
			"other": "%{count} days",
		},
	},
	"errors": map[string]any{
		"product_not_found": "Product Not Found",
		"not_product_code":  "This QR code does not belong to a dates product",
		"no_qr_code":        "No readable QR code found in the image",
		"content_too_long":  "Product data is too long for a QR code at this error correction level",
		"invalid_parameter": "Invalid value for %{name}",
		"empty_payload":     "Payload is empty",
		"storage_disabled":  "Archiving is not configured",
	},
	"nav": map[string]any{
		"back":     "Back to Home",
		"language": "العربية",
	},
}

var messagesAR = map[string]any{
	"qr": map[string]any{
		"title":      "رمز QR للمنتج",
		"failed":     "فشل في إنشاء رمز QR",
		"loading":    "جاري إنشاء رمز QR...",
		"regenerate": "إعادة إنشاء",
		"download":   "تحميل",
		"archive":    "أرشفة",
		"alt":        "رمز QR لـ %{variety}",
	},
	"product": map[string]any{
		"variety":         "الصنف",
		"producer":        "المنتج",
		"location":        "الموقع",
		"grade":           "الدرجة",
		"harvest":         "تاريخ الحصاد",
		"weight":          "الوزن",
		"weight_value":    "%{grams} غرام",
		"retail_price":    "سعر التجزئة",
		"wholesale_price": "سعر الجملة",
		"price_value":     "%{amount} ريال",
		"color":           "اللون",
		"packaging":       "التعبئة",
		"certificates":    "الشهادات",
		"shelf_life":      "مدة الصلاحية",
		"shelf_life_days": map[string]string{
			"zero":  "لا أيام",
			"one":   "يوم واحد",
			"two":   "يومان",
			"few":   "%{count} أيام",
			"many":  "%{count} يومًا",
			"other": "%{count} يوم",
		},
	},
	"errors": map[string]any{
		"product_not_found": "المنتج غير موجود",
		"not_product_code":  "رمز QR هذا لا يخص منتج تمور",
		"no_qr_code":        "لم يتم العثور على رمز QR مقروء في الصورة",
		"content_too_long":  "بيانات المنتج أطول من سعة رمز QR بمستوى تصحيح الأخطاء هذا",
		"invalid_parameter": "قيمة غير صالحة لـ %{name}",
		"empty_payload":     "البيانات فارغة",
		"storage_disabled":  "الأرشفة غير مهيأة",
	},
	"nav": map[string]any{
		"back":     "العودة للرئيسية",
		"language": "English",
	},
}

// NewI18n returns the English/Arabic message table, English by default.
func NewI18n(opts ...i18n.Option) (*i18n.I18n, error) {
	base := []i18n.Option{
		i18n.WithDefaultLanguage("en"),
		i18n.WithLanguages("en", "ar"),
		i18n.WithTranslations("en", Namespace, messagesEN),
		i18n.WithTranslations("ar", Namespace, messagesAR),
	}
	return i18n.New(append(base, opts...)...)
}
