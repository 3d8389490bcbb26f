package common

import "strings"

// UnknownStr is the fallback label for unrecognized enum values.
const UnknownStr = "unknown"

// TitleWords turns a file or directory name into a human-readable title:
// underscores and hyphens become spaces, and every word is capitalized.
// Examples: "getting_started" -> "Getting Started", "unit-testing" -> "Unit Testing".
func TitleWords(name string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(name)

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = capitalize(w)
	}

	return strings.Join(words, " ")
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
	if w == "" {
		return w
	}

	runes := []rune(w)

	head := strings.ToUpper(string(runes[0]))
	if len(runes) == 1 {
		return head
	}

	return head + strings.ToLower(string(runes[1:]))
}
