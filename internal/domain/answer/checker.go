package answer

import (
	"math"
	"strings"
)

const (
	// wordCoverageThreshold is the fraction of correct-answer words that
	// must find a similar user word for 3+ word answers. Applying it to
	// the correct side rejects strict-prefix answers like "Salt Lake"
	// for "Salt Lake City".
	wordCoverageThreshold = 0.8

	// fuzzyPointsFactor discounts non-exact accepted answers.
	fuzzyPointsFactor = 0.8

	// shortAnswerWordLimit is the word count at or below which answers get
	// no partial credit, only exact or phonetic equality of the full text.
	shortAnswerWordLimit = 2
)

// leadingQualifiers are first words of two-word names whose second word is
// not an acceptable answer on its own: "Orleans" does not answer
// "New Orleans", while "Hemingway" answers "Ernest Hemingway".
var leadingQualifiers = map[string]struct{}{
	"new": {}, "old": {}, "the": {},
	"north": {}, "south": {}, "east": {}, "west": {},
	"los": {}, "las": {}, "la": {}, "le": {}, "el": {},
	"san": {}, "santa": {}, "saint": {}, "st": {},
	"fort": {}, "ft": {}, "port": {}, "cape": {},
	"lake": {}, "salt": {}, "mount": {}, "mt": {},
}

// Check decides whether a free-text user answer is equivalent to the
// canonical correct answer under trivia conventions: optional question
// phrasing, optional articles and title prefixes, accent and punctuation
// variance, parenthetical alternatives, list answers, and phonetic typo
// tolerance. It never fails; malformed input simply yields false. Check is
// pure and safe for concurrent use.
func Check(userAnswer, correctAnswer string) bool {
	user := stripArticles(stripQuestionPhrase(Normalize(userAnswer)))
	if user == "" {
		return false
	}

	variants := expandVariants(correctAnswer)
	normalized := make([]string, 0, len(variants))
	for _, v := range variants {
		c := stripArticles(Normalize(v))
		if c == "" {
			continue
		}
		if user == c {
			return true
		}
		normalized = append(normalized, c)
	}
	if len(normalized) == 0 {
		return false
	}

	if isList(correctAnswer) && !isProperNoun(correctAnswer) {
		return matchesList(userAnswer, correctAnswer)
	}

	for _, c := range normalized {
		if matchesWords(user, c, correctAnswer) {
			return true
		}
	}
	return false
}

// matchesWords applies the word-level rules to one normalized variant.
// Short answers require phonetic equality of the full text (or the surname
// rule); longer answers accept on sufficient word coverage.
func matchesWords(user, correct, rawCorrect string) bool {
	correctWords := tokens(correct)
	userWords := tokens(user)

	if len(correctWords) <= shortAnswerWordLimit {
		if phoneticCode(user) == phoneticCode(correct) {
			return true
		}
		return surnameMatch(userWords, correctWords, rawCorrect)
	}

	matched := 0
	for _, cw := range correctWords {
		for _, uw := range userWords {
			if wordsAreSimilar(uw, cw) {
				matched++
				break
			}
		}
	}
	return float64(matched)/float64(len(correctWords)) >= wordCoverageThreshold
}

// tokens splits normalized text into words, folding "&" into "and" so
// "Simon & Garfunkel" and "Simon and Garfunkel" tokenize identically.
func tokens(text string) []string {
	words := strings.Fields(text)
	for i, w := range words {
		if w == "&" {
			words[i] = "and"
		}
	}
	return words
}

// surnameMatch accepts a lone surname for a two-word personal name. The
// qualifier table blocks partial place names, where the second word alone
// changes meaning.
func surnameMatch(userWords, correctWords []string, rawCorrect string) bool {
	if len(userWords) != 1 || len(correctWords) != 2 {
		return false
	}
	if !isProperNoun(rawCorrect) {
		return false
	}
	if _, ok := leadingQualifiers[correctWords[0]]; ok {
		return false
	}
	return len(userWords[0]) > 2 && userWords[0] == correctWords[1]
}

// Points scores a submission: full points for a normalized exact match
// (question phrasing alone is not penalized), a discounted floor(0.8*base)
// for rule-accepted answers, zero otherwise.
func Points(userAnswer, correctAnswer string, basePoints int) int {
	if basePoints <= 0 {
		return 0
	}
	user := stripQuestionPhrase(Normalize(userAnswer))
	if user != "" && user == Normalize(correctAnswer) {
		return basePoints
	}
	if Check(userAnswer, correctAnswer) {
		return int(math.Floor(float64(basePoints) * fuzzyPointsFactor))
	}
	return 0
}
