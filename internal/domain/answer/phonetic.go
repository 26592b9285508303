package answer

import "strings"

// digraphRewrites run before the single-character folds; order matters
// because "th" must collapse before 't' and 'h' are folded separately.
var digraphRewrites = [...]struct {
	from string
	to   string
}{
	{"th", "t"},
	{"ch", "k"},
	{"sh", "s"},
	{"ph", "f"},
	{"x", "ks"},
}

// phoneticClasses folds letters into coarse sound classes: vowels, labials,
// velars, dentals, nasals, semivowels, sibilants, and liquids. 'h' has no
// class and is dropped.
var phoneticClasses = map[rune]rune{
	'a': 'a', 'e': 'a', 'i': 'a', 'o': 'a', 'u': 'a',
	'b': 'b', 'p': 'b', 'f': 'b', 'v': 'b',
	'c': 'k', 'g': 'k', 'j': 'k', 'k': 'k', 'q': 'k',
	'd': 't', 't': 't',
	'm': 'm', 'n': 'm',
	'w': 'w', 'y': 'w',
	's': 's', 'z': 's',
	'l': 'r', 'r': 'r',
}

// phoneticCode collapses a normalized word (or phrase) into a coarse
// comparison key. The fold deliberately favors recall: many near-homophones
// share a code. Digits pass through, runs of the same class collapse.
func phoneticCode(word string) string {
	for _, rw := range digraphRewrites {
		word = strings.ReplaceAll(word, rw.from, rw.to)
	}

	var builder strings.Builder
	builder.Grow(len(word))
	var last rune
	for _, r := range word {
		c, ok := phoneticClasses[r]
		if !ok {
			if r >= '0' && r <= '9' {
				c = r
			} else {
				continue
			}
		}
		if c == last {
			continue
		}
		builder.WriteRune(c)
		last = c
	}
	return builder.String()
}
