package utils

import (
	"strings"
	"unicode"
)

// isWordRune matches the runs that count as a word for IsSingleWord:
// ASCII letters or digits.
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// IsSingleWord reports whether s holds at most one word: it is false as soon
// as a run of letters/digits, whitespace and another run of letters/digits
// follow each other directly.
func IsSingleWord(s string) bool {
	lastWasWord := false
	afterWord := false
	for _, r := range s {
		switch {
		case isWordRune(r):
			if afterWord {
				return false
			}
			lastWasWord = true
		case unicode.IsSpace(r):
			if lastWasWord {
				afterWord = true
			}
			lastWasWord = false
		default:
			lastWasWord = false
			afterWord = false
		}
	}
	return true
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// StripNonAlphabet drops everything except ASCII letters and spaces, then trims.
func StripNonAlphabet(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == ' ' {
			sb.WriteByte(c)
		}
	}
	return strings.TrimSpace(sb.String())
}

// NormalizeWord lowercases and trims user input before it reaches an engine.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
