// Package setting stores per-device preferences as string key/value pairs.
// The recognized keys are language and currency; unknown keys are stored
// as-is so the set can grow without a migration.
package setting

const (
	KeyLanguage = "language"
	KeyCurrency = "currency"
)

// Defaults returns the built-in values that apply when a key has never
// been written.
func Defaults() map[string]string {
	return map[string]string{
		KeyLanguage: "en",
		KeyCurrency: "$",
	}
}

// Settings is the snapshot handed to the rendering layer at startup. The
// store stays the source of truth; this is a plain value, not shared state.
type Settings struct {
	Language string
	Currency string
}
