package i18n

import (
	"testing"

	"cats-shop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundle(t *testing.T) {
	bundle, err := LoadBundle()
	require.NoError(t, err)

	uk := bundle.For(model.LocaleUK)
	ru := bundle.For(model.LocaleRU)
	require.NotNil(t, uk)
	require.NotNil(t, ru)

	assert.Equal(t, model.LocaleUK, uk.Locale())
	assert.Equal(t, model.LocaleRU, ru.Locale())
}

func TestBundle_UnknownLocaleFallsBackToRussian(t *testing.T) {
	bundle, err := LoadBundle()
	require.NoError(t, err)

	d := bundle.For(model.Locale("en"))
	assert.Equal(t, model.LocaleRU, d.Locale())
}

func TestDictionary_Get(t *testing.T) {
	bundle, err := LoadBundle()
	require.NoError(t, err)

	text, err := bundle.For(model.LocaleUK).Get("product_page.buy_now")
	require.NoError(t, err)
	assert.Equal(t, "Купити зараз", text)

	_, err = bundle.For(model.LocaleUK).Get("product_page.unknown_key")
	assert.ErrorIs(t, err, model.ErrMissingTranslation)
}

func TestDictionary_TFallsBackToKey(t *testing.T) {
	bundle, err := LoadBundle()
	require.NoError(t, err)

	assert.Equal(t, "some.missing.key", bundle.For(model.LocaleRU).T("some.missing.key"))
}

func TestDictionary_TQuantity(t *testing.T) {
	bundle, err := LoadBundle()
	require.NoError(t, err)

	text := bundle.For(model.LocaleUK).TQuantity("product_page.total_price", 8)
	assert.Equal(t, "Разом (8 шт):", text)
}

func TestDictionaries_KeyParity(t *testing.T) {
	bundle, err := LoadBundle()
	require.NoError(t, err)

	uk := bundle.For(model.LocaleUK)
	ru := bundle.For(model.LocaleRU)

	for key := range uk.entries {
		_, err := ru.Get(key)
		assert.NoError(t, err, "key %q missing in ru", key)
	}
	for key := range ru.entries {
		_, err := uk.Get(key)
		assert.NoError(t, err, "key %q missing in uk", key)
	}
}
