package answer

import (
	"strings"
	"unicode"
)

var andSeparator = strings.NewReplacer(" and ", " & ", " And ", " & ", " AND ", " & ")

// isList reports whether a raw correct answer enumerates several items.
func isList(raw string) bool {
	return strings.ContainsAny(raw, ",&")
}

// isProperNoun is the capitalization heuristic that keeps multi-word names
// out of list mode: more than one word, every word starting with an
// uppercase letter in the original text. Tokens that do not start with a
// letter ("&", "7") are ignored, so "Simon & Garfunkel" still qualifies.
func isProperNoun(raw string) bool {
	letterWords := 0
	for _, w := range strings.Fields(raw) {
		r := []rune(w)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letterWords++
	}
	return letterWords >= 2
}

// splitListItems breaks raw text on commas, ampersands, and the word
// "and", then normalizes each piece, discarding empties. The first item
// also sheds a leading question phrase so "what are red, white & blue"
// splits cleanly.
func splitListItems(raw string) []string {
	replaced := andSeparator.Replace(" " + raw + " ")
	parts := strings.FieldsFunc(replaced, func(r rune) bool {
		return r == ',' || r == '&'
	})
	items := make([]string, 0, len(parts))
	for i, part := range parts {
		normalized := Normalize(part)
		if i == 0 {
			normalized = stripQuestionPhrase(normalized)
		}
		normalized = stripArticles(normalized)
		if normalized != "" {
			items = append(items, normalized)
		}
	}
	return items
}

// matchesList accepts when every correct item finds at least one similar
// user item. Matching is existential and order-independent; a single user
// item may cover duplicate correct items.
func matchesList(rawUser, rawCorrect string) bool {
	correctItems := splitListItems(rawCorrect)
	userItems := splitListItems(rawUser)
	if len(correctItems) == 0 || len(userItems) == 0 {
		return false
	}
	for _, want := range correctItems {
		found := false
		for _, got := range userItems {
			if wordsAreSimilar(got, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
