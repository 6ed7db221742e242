package model

// Locale identifies one of the two supported display languages.
type Locale string

const (
	LocaleUK Locale = "uk"
	LocaleRU Locale = "ru"
)

// NormalizeLocale maps an arbitrary locale value onto the supported set.
// Anything that is not Ukrainian resolves to Russian, matching the
// storefront's routing behaviour.
func NormalizeLocale(s string) Locale {
	if s == string(LocaleUK) {
		return LocaleUK
	}
	return LocaleRU
}

// LocalizedText holds one text field in both supported languages.
type LocalizedText struct {
	UK string `json:"uk"`
	RU string `json:"ru"`
}

// In returns the text for the given locale. A missing translation is an
// explicit error rather than a silent empty string.
func (t LocalizedText) In(locale Locale) (string, error) {
	var text string
	switch locale {
	case LocaleUK:
		text = t.UK
	default:
		text = t.RU
	}
	if text == "" {
		return "", ErrMissingTranslation
	}
	return text, nil
}

// InOrFallback returns the text for the given locale, falling back to the
// other language when the requested one is empty. Used by the page templates
// where a degraded display beats an error.
func (t LocalizedText) InOrFallback(locale Locale) string {
	if text, err := t.In(locale); err == nil {
		return text
	}
	if locale == LocaleUK {
		return t.RU
	}
	return t.UK
}
