package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Limit on Accept-Language headers we bother parsing.
const maxAcceptLanguageLength = 4096

// Text directions for the HTML dir attribute.
const (
	LTR = "ltr"
	RTL = "rtl"
)

// Direction returns RTL for right-to-left scripts and LTR otherwise.
func Direction(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return LTR
	}
	script, _ := tag.Script()
	switch script.String() {
	case "Arab", "Hebr", "Syrc", "Thaa", "Nkoo", "Adlm", "Rohg":
		return RTL
	}
	return LTR
}

// ReplacePlaceholders substitutes %{name} markers. Unknown markers are left as-is.
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDate renders a calendar date for display: "January 15, 2024" in
// English, "١٥ يناير ٢٠٢٤" in Arabic.
func FormatDate(t time.Time, lang string) string {
	if baseLanguage(lang) == "ar" {
		s := fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
		return ArabicDigits(s)
	}
	return t.Format("January 2, 2006")
}

// ArabicDigits replaces ASCII digits with Arabic-Indic digits.
func ArabicDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '٠' + (r - '0')
		}
		return r
	}, s)
}
