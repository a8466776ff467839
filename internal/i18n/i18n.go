// Package i18n provides the bilingual (English/Arabic) label catalog and
// the layout-direction flag. It is pure presentation support: nothing in
// here reads or writes product data.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Language identifies one of the supported display languages.
type Language string

// Supported languages.
const (
	English Language = "en"
	Arabic  Language = "ar"
)

// DefaultLanguage is used when no preference is stored.
const DefaultLanguage = English

// ParseLanguage normalizes a stored language code, falling back to the
// default for anything unknown.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ar":
		return Arabic
	case "en":
		return English
	default:
		return DefaultLanguage
	}
}

// Toggle switches between the two supported languages.
func (l Language) Toggle() Language {
	if l == English {
		return Arabic
	}
	return English
}

// RTL reports whether the language lays out right-to-left.
func (l Language) RTL() bool {
	return l == Arabic
}

// Tag returns the collation/locale tag for the language.
func (l Language) Tag() language.Tag {
	switch l {
	case Arabic:
		return language.Arabic
	case English:
		return language.English
	default:
		return language.Und
	}
}

// Label returns the language's own display name.
func (l Language) Label() string {
	if l == Arabic {
		return "العربية"
	}
	return "English"
}

// Catalog maps label keys to localized strings for every supported
// language, with English as the fallback.
type Catalog struct {
	messages map[Language]map[string]string
}

// Load parses the embedded locale files.
func Load() (*Catalog, error) {
	c := &Catalog{messages: make(map[Language]map[string]string)}
	for _, lang := range []Language{English, Arabic} {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		msgs := make(map[string]string)
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		c.messages[lang] = msgs
	}
	return c, nil
}

// T looks key up for lang, falling back to English and finally to the
// key itself so a missing translation never blanks the UI.
func (c *Catalog) T(lang Language, key string) string {
	if msg, ok := c.messages[lang][key]; ok {
		return msg
	}
	if msg, ok := c.messages[English][key]; ok {
		return msg
	}
	return key
}

// Keys returns every key defined for a language, for completeness checks.
func (c *Catalog) Keys(lang Language) []string {
	keys := make([]string, 0, len(c.messages[lang]))
	for k := range c.messages[lang] {
		keys = append(keys, k)
	}
	return keys
}
