// Package i18n loads the embedded uk/ru dictionaries the storefront pages
// render with. Missing keys are explicit errors instead of silently empty
// strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"cats-shop/internal/model"
)

//go:embed locales/*.json
var localeFiles embed.FS

// Dictionary holds the flat key/value translations of one locale.
type Dictionary struct {
	locale  model.Locale
	entries map[string]string
}

// Bundle holds the dictionaries of all supported locales.
type Bundle struct {
	dicts map[model.Locale]*Dictionary
}

// LoadBundle parses both embedded dictionaries. Called once at startup; an
// unparsable dictionary is a build defect and fails fast.
func LoadBundle() (*Bundle, error) {
	bundle := &Bundle{dicts: make(map[model.Locale]*Dictionary, 2)}

	for _, locale := range []model.Locale{model.LocaleUK, model.LocaleRU} {
		data, err := localeFiles.ReadFile(fmt.Sprintf("locales/%s.json", locale))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dictionary: %w", locale, err)
		}

		entries := make(map[string]string)
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse %s dictionary: %w", locale, err)
		}

		bundle.dicts[locale] = &Dictionary{locale: locale, entries: entries}
	}

	return bundle, nil
}

// For returns the dictionary of the given locale, normalising first.
func (b *Bundle) For(locale model.Locale) *Dictionary {
	if d, ok := b.dicts[locale]; ok {
		return d
	}
	return b.dicts[model.LocaleRU]
}

// Locale returns the dictionary's locale.
func (d *Dictionary) Locale() model.Locale {
	return d.locale
}

// Get returns the translation for the key, or a missing-translation error.
func (d *Dictionary) Get(key string) (string, error) {
	if text, ok := d.entries[key]; ok {
		return text, nil
	}
	return "", fmt.Errorf("%w: %s (%s)", model.ErrMissingTranslation, key, d.locale)
}

// T returns the translation for the key, falling back to the key itself so
// a missing entry is visible on the page instead of blank.
func (d *Dictionary) T(key string) string {
	if text, ok := d.entries[key]; ok {
		return text
	}
	return key
}

// TQuantity renders a translation containing a {quantity} placeholder.
func (d *Dictionary) TQuantity(key string, quantity int) string {
	return strings.ReplaceAll(d.T(key), "{quantity}", fmt.Sprintf("%d", quantity))
}
