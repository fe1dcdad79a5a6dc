// Package i18n resolves UI strings for the supported display languages.
// The language code comes from the settings store ("language" key) and is
// matched leniently, so "fr-CA" or "zh-Hans" pick the right table.
package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.French,
	language.Chinese,
}

var codes = []string{"en", "fr", "zh"}

var matcher = language.NewMatcher(supported)

var names = map[string]string{
	"en": "English",
	"fr": "Français",
	"zh": "中文",
}

// Languages returns the supported language codes in display order.
func Languages() []string {
	return codes
}

// LanguageName returns the native name of a supported language code.
func LanguageName(code string) string {
	if name, ok := names[code]; ok {
		return name
	}

	return code
}

// Resolve maps a free-form language code to one of the supported codes,
// falling back to "en".
func Resolve(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return codes[0]
	}

	_, idx, _ := matcher.Match(tag)

	return codes[idx]
}

// T returns the translation of key for lang. Missing keys fall back to the
// English table, then to the key itself.
func T(lang, key string) string {
	if v, ok := locales[Resolve(lang)][key]; ok {
		return v
	}

	if v, ok := locales["en"][key]; ok {
		return v
	}

	return key
}
