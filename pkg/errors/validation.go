package errors

import (
	"unicode"
	"unicode/utf8"
)

const (
	// MaxThemeLength is the longest accepted theme name, in runes.
	MaxThemeLength = 64

	// MaxWordCount is the largest word list a generator may be asked for.
	MaxWordCount = 200
)

// ValidateTheme checks a theme name before it is sent to a word generator
// or used as a cache key.
//
//   - No empty names
//   - No control characters
//   - At most MaxThemeLength runes
func ValidateTheme(theme string) error {
	if theme == "" {
		return New(ErrCodeInvalidTheme, "theme cannot be empty")
	}
	if n := utf8.RuneCountInString(theme); n > MaxThemeLength {
		return New(ErrCodeInvalidTheme, "theme too long (%d runes, max %d)", n, MaxThemeLength)
	}
	for _, r := range theme {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTheme, "theme contains invalid control characters")
		}
	}
	return nil
}

// ValidateCount checks a requested word count.
func ValidateCount(n int) error {
	if n < 1 || n > MaxWordCount {
		return New(ErrCodeInvalidInput, "word count must be between 1 and %d, got %d", MaxWordCount, n)
	}
	return nil
}
