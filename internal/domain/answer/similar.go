package answer

import "strings"

var strippableSuffixes = [...]string{"ing", "ed", "es", "s"}
var appendableSuffixes = [...]string{"s", "es"}

// wordsAreSimilar is the atomic equality test used by list matching and
// word-overlap scoring. Two tokens are similar when they are equal, share
// a phonetic code, denote the same number, or differ only by a simple
// plural/tense suffix.
func wordsAreSimilar(a, b string) bool {
	if a == b {
		return a != ""
	}
	if a == "" || b == "" {
		return false
	}
	if phoneticCode(a) == phoneticCode(b) {
		return true
	}
	if numbersMatch(a, b) {
		return true
	}
	return suffixVariant(a, b) || suffixVariant(b, a)
}

// suffixVariant reports whether b is a with a trailing s/es/ing/ed removed
// or with s/es appended. Not a stemmer, just singular/plural and simple
// tense tolerance.
func suffixVariant(a, b string) bool {
	for _, suffix := range strippableSuffixes {
		if strings.HasSuffix(a, suffix) && strings.TrimSuffix(a, suffix) == b {
			return true
		}
	}
	for _, suffix := range appendableSuffixes {
		if a+suffix == b {
			return true
		}
	}
	return false
}
