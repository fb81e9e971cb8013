package i18n

// M holds placeholder values keyed by name.
type M map[string]any
