package answer

import "strings"

// optionalPrefixes are honorific and geographic title words that editorial
// answers sometimes carry but players routinely omit.
var optionalPrefixes = map[string]struct{}{
	"mr":    {},
	"mrs":   {},
	"ms":    {},
	"dr":    {},
	"sir":   {},
	"mt":    {},
	"mount": {},
	"saint": {},
	"st":    {},
}

// expandVariants derives the acceptable textual forms of a raw correct
// answer. It always includes the original. A parenthetical group yields the
// form with delimiters removed ("(Lewis) Carroll" -> "Lewis Carroll"), the
// form with the whole span removed ("Carroll"), and, for the "X (or Y)"
// convention, the inner alternative on its own ("Honest Abe"). Each variant
// additionally spawns a copy without a leading honorific/geographic prefix.
// Callers normalize variants before comparison; no ordering is guaranteed.
func expandVariants(correct string) []string {
	variants := []string{correct}

	open := strings.Index(correct, "(")
	closing := strings.Index(correct, ")")
	if open >= 0 && closing > open {
		inner := correct[open+1 : closing]
		variants = append(variants,
			correct[:open]+inner+correct[closing+1:],
			correct[:open]+correct[closing+1:],
		)
		if alt, ok := trimAlternativeMarker(inner); ok {
			variants = append(variants, alt)
		}
	}

	for _, v := range variants {
		if stripped, ok := withoutLeadingPrefix(v); ok {
			variants = append(variants, stripped)
		}
	}

	return dedupe(variants)
}

// trimAlternativeMarker recognizes "(or Honest Abe)" style parentheticals,
// where the inner text is a wholly separate acceptable name.
func trimAlternativeMarker(inner string) (string, bool) {
	trimmed := strings.TrimSpace(inner)
	lowered := strings.ToLower(trimmed)
	if strings.HasPrefix(lowered, "or ") {
		return strings.TrimSpace(trimmed[3:]), true
	}
	return "", false
}

func withoutLeadingPrefix(text string) (string, bool) {
	words := strings.Fields(text)
	if len(words) < 2 {
		return "", false
	}
	first := Normalize(words[0])
	if _, ok := optionalPrefixes[first]; !ok {
		return "", false
	}
	return strings.Join(words[1:], " "), true
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
