package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CatalogsMirrorEachOther(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	en := c.Keys(English)
	require.NotEmpty(t, en)
	assert.ElementsMatch(t, en, c.Keys(Arabic),
		"every key must exist in both languages")
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Qty", c.T(English, "table.quantity"))
	assert.Equal(t, "الكمية", c.T(Arabic, "table.quantity"))
	assert.Equal(t, "no.such.key", c.T(Arabic, "no.such.key"))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Arabic, ParseLanguage(" AR "))
	assert.Equal(t, English, ParseLanguage("en"))
	assert.Equal(t, DefaultLanguage, ParseLanguage("fr"))
	assert.Equal(t, DefaultLanguage, ParseLanguage(""))
}

func TestLanguageProperties(t *testing.T) {
	assert.True(t, Arabic.RTL())
	assert.False(t, English.RTL())
	assert.Equal(t, Arabic, English.Toggle())
	assert.Equal(t, English, Arabic.Toggle())
	assert.Equal(t, "العربية", Arabic.Label())
}
