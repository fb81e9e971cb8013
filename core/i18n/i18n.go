package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// DefaultLang is used when WithDefaultLanguage is not given.
const DefaultLang = "en"

var (
	ErrEmptyLanguage  = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
	ErrInvalidTag     = errors.New("i18n: invalid language tag")
)

// I18n holds translations keyed by language, namespace and dotted key.
// It is immutable after New and safe for concurrent use.
type I18n struct {
	// "lang:namespace:key.path" -> text
	translations map[string]string

	pluralRules map[string]PluralRule
	defaultLang string
	languages   []string
	matcher     language.Matcher

	missingKeyHandler func(lang, namespace, key string)
}

// Option configures I18n during New.
type Option func(*I18n) error

// New builds an I18n. The default language is always first in Languages.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		pluralRules:  make(map[string]PluralRule),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	i.languages = orderLanguages(i.defaultLang, i.languages)

	tags := make([]language.Tag, 0, len(i.languages))
	for _, lang := range i.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, lang)
		}
		tags = append(tags, tag)
	}
	i.matcher = language.NewMatcher(tags)

	return i, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *I18n {
	i, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return i
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages. Languages that have
// translations are added automatically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang != "" {
				i.languages = append(i.languages, lang)
			}
		}
		return nil
	}
}

// WithPluralRule overrides the plural rule for a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return errors.New("i18n: plural rule cannot be nil")
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingKeyHandler is called when a key is found in neither the
// requested nor the default language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithTranslations loads a nested map of strings for lang and namespace.
// Nested maps become dotted keys: {"labels": {"grade": "Grade"}} -> "labels.grade".
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		for key, value := range flatten(translations, "") {
			i.translations[buildKey(lang, namespace, key)] = value
		}
		if _, ok := i.pluralRules[lang]; !ok {
			i.pluralRules[lang] = PluralRuleFor(lang)
		}
		i.languages = append(i.languages, lang)
		return nil
	}
}

// T returns the translation of key, falling back to the default language and
// then to the key itself. Placeholders look like %{name}.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	if text, ok := i.lookup(lang, namespace, key); ok {
		return ReplacePlaceholders(text, merge(placeholders))
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Tn returns the plural form of key for n. Forms are stored as sub-keys
// (key.zero, key.one, key.two, key.few, key.many, key.other) and missing
// forms fall back to "other". %{count} is set to n.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	rule, ok := i.pluralRules[lang]
	if !ok {
		rule = PluralRuleFor(lang)
	}

	form := rule(n)
	candidates := []string{key + "." + form}
	if form != PluralOther {
		candidates = append(candidates, key+"."+PluralOther)
	}

	values := M{"count": n}
	maps.Copy(values, merge(placeholders))

	for _, k := range candidates {
		if text, ok := i.lookup(lang, namespace, k); ok {
			return ReplacePlaceholders(text, values)
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Languages returns the supported languages, default first.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Supports reports whether lang is one of Languages.
func (i *I18n) Supports(lang string) bool {
	return slices.Contains(i.languages, lang)
}

// Match picks the best supported language for an Accept-Language header.
// An empty or unparsable header yields the default language.
func (i *I18n) Match(acceptLanguage string) string {
	if acceptLanguage == "" || len(acceptLanguage) > maxAcceptLanguageLength {
		return i.defaultLang
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return i.defaultLang
	}

	_, index, conf := i.matcher.Match(prefs...)
	if conf == language.No {
		return i.defaultLang
	}
	return i.languages[index]
}

func (i *I18n) lookup(lang, namespace, key string) (string, bool) {
	if text, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return text, true
	}
	if lang != i.defaultLang {
		if text, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return text, true
		}
	}
	return "", false
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for sub, text := range v {
				out[full+"."+sub] = text
			}
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return out
}

func merge(placeholders []M) M {
	switch len(placeholders) {
	case 0:
		return nil
	case 1:
		return placeholders[0]
	}
	out := make(M)
	for _, p := range placeholders {
		maps.Copy(out, p)
	}
	return out
}

// orderLanguages dedupes langs and puts def first, keeping first-seen order.
func orderLanguages(def string, langs []string) []string {
	out := []string{def}
	for _, lang := range langs {
		if !slices.Contains(out, lang) {
			out = append(out, lang)
		}
	}
	return out
}
