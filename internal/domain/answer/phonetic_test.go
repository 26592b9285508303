package answer

import "testing"

func TestPhoneticCodeEquivalence(t *testing.T) {
	samePairs := [][2]string{
		{"gray", "grey"},
		{"phone", "fone"},
		{"box", "bocks"},
		{"crocodile", "krokodile"},
		{"mississippi", "misisipi"},
		{"color", "kolor"},
	}
	for _, pair := range samePairs {
		a, b := phoneticCode(pair[0]), phoneticCode(pair[1])
		if a != b {
			t.Fatalf("expected %q and %q to share a code, got %q vs %q", pair[0], pair[1], a, b)
		}
	}

	differentPairs := [][2]string{
		{"orleans", "new orleans"},
		{"paris", "london"},
		{"salt", "city"},
	}
	for _, pair := range differentPairs {
		a, b := phoneticCode(pair[0]), phoneticCode(pair[1])
		if a == b {
			t.Fatalf("expected %q and %q to differ, both folded to %q", pair[0], pair[1], a)
		}
	}
}

func TestPhoneticCodeShape(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"paris", "baras"},
		{"ship", "sab"},
		{"hemingway", "amamkwaw"},
		{"catch 22", "katk2"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := phoneticCode(tc.in); got != tc.out {
			t.Fatalf("phoneticCode(%q): expected %q got %q", tc.in, tc.out, got)
		}
	}
}

func TestWordsAreSimilar(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"paris", "paris", true},
		{"dog", "dogs", true},
		{"dogs", "dog", true},
		{"running", "run", false}, // strip "ing" gives "runn"
		{"walked", "walk", true},
		{"seven", "7", true},
		{"7", "seven", true},
		{"twenty", "20", true},
		{"seven", "8", false},
		{"phone", "fone", true},
		{"paris", "london", false},
		{"", "", false},
		{"", "paris", false},
	}
	for _, tc := range cases {
		if got := wordsAreSimilar(tc.a, tc.b); got != tc.want {
			t.Fatalf("wordsAreSimilar(%q, %q): expected %v got %v", tc.a, tc.b, tc.want, got)
		}
	}
}
