package i18n

import "strings"

// PluralRule maps a count to a CLDR plural category.
type PluralRule func(n int) string

const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// EnglishPluralRule: zero, one, other.
var EnglishPluralRule PluralRule = func(n int) string {
	switch abs(n) {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	}
	return PluralOther
}

// ArabicPluralRule uses all six CLDR categories.
var ArabicPluralRule PluralRule = func(n int) string {
	n = abs(n)
	mod := n % 100
	switch {
	case n == 0:
		return PluralZero
	case n == 1:
		return PluralOne
	case n == 2:
		return PluralTwo
	case mod >= 3 && mod <= 10:
		return PluralFew
	case mod >= 11 && mod <= 99:
		return PluralMany
	}
	return PluralOther
}

// PluralRuleFor returns the rule for a language tag such as "ar" or "ar-SA".
func PluralRuleFor(lang string) PluralRule {
	if baseLanguage(lang) == "ar" {
		return ArabicPluralRule
	}
	return EnglishPluralRule
}

func baseLanguage(lang string) string {
	base, _, _ := strings.Cut(strings.ToLower(lang), "-")
	base, _, _ = strings.Cut(base, "_")
	return base
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
