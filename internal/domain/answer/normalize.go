package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes characters and drops combining marks, so that
// "café" and "cafe" normalize identically.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces free text to lowercase words containing only
// [a-z0-9&], single-spaced and trimmed. Hyphens become spaces so that
// "rock-and-roll" and "rock and roll" compare equal. Normalize is total
// and idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	lowered = strings.ReplaceAll(lowered, "-", " ")
	if folded, _, err := transform.String(foldAccents, lowered); err == nil {
		lowered = folded
	}

	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '&':
			builder.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				builder.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(builder.String())
}

var articles = map[string]struct{}{
	"a":   {},
	"an":  {},
	"the": {},
}

// stripArticles removes determiner tokens anywhere in multi-word text.
// A single-word input keeps its article, so "the" still matches "The".
func stripArticles(text string) string {
	words := strings.Fields(text)
	if len(words) <= 1 {
		return text
	}
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := articles[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return text
	}
	return strings.Join(kept, " ")
}

var questionWords = map[string]struct{}{
	"what":  {},
	"who":   {},
	"where": {},
	"when":  {},
}

var questionVerbs = map[string]struct{}{
	"is":   {},
	"are":  {},
	"was":  {},
	"were": {},
}

// Contractions lose their apostrophe during normalization.
var contractedQuestionWords = map[string]struct{}{
	"whats":  {},
	"whos":   {},
	"wheres": {},
	"whens":  {},
}

// stripQuestionPhrase removes a single leading interrogative clause
// ("what is", "who were", "whats") from normalized text. Responses that
// consist only of the clause normalize to the empty string, which the
// checker rejects outright.
func stripQuestionPhrase(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	if _, ok := contractedQuestionWords[words[0]]; ok {
		return strings.Join(words[1:], " ")
	}
	if len(words) >= 2 {
		_, qw := questionWords[words[0]]
		_, qv := questionVerbs[words[1]]
		if qw && qv {
			return strings.Join(words[2:], " ")
		}
	}
	return text
}
