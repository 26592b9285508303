package answer

import "testing"

func TestCheckAcceptedAnswers(t *testing.T) {
	cases := []struct {
		name    string
		user    string
		correct string
	}{
		{"question phrase prefix", "what is Paris", "Paris"},
		{"contracted question phrase", "whats Paris", "Paris"},
		{"accent folding", "cafe", "café"},
		{"optional leading article", "Beatles", "The Beatles"},
		{"hyphenated canonical form", "rock and roll", "rock-and-roll"},
		{"hyphenated user form", "rock-and-roll", "rock and roll"},
		{"parenthetical kept in place", "Lewis Carroll", "(Lewis) Carroll"},
		{"parenthetical removed", "Carroll", "(Lewis) Carroll"},
		{"middle parenthetical removed", "the Reds", "the (Cincinnati) Reds"},
		{"trailing parenthetical removed", "a Peacock", "a Peacock (Throne)"},
		{"alternative name", "Honest Abe", "Abraham Lincoln (or Honest Abe)"},
		{"geographic prefix optional", "Everest", "Mount Everest"},
		{"honorific prefix optional", "Seuss", "Dr. Seuss"},
		{"surname for two-word name", "Hemingway", "Ernest Hemingway"},
		{"list order independent", "red, white & blue", "blue, red & white"},
		{"list with question phrase", "what are red, white & blue", "red, white & blue"},
		{"ampersand equals and", "Simon and Garfunkel", "Simon & Garfunkel"},
		{"plural tolerance in long answer", "grape of wrath", "The Grapes of Wrath"},
		{"number word versus digits", "7 deadly sins", "seven deadly sins"},
		{"80 percent coverage", "snow white and seven dwarves", "Snow White and the Seven Dwarfs"},
		{"phonetic short answer", "Jon Stewart", "John Stewart"},
	}

	for _, tc := range cases {
		if !Check(tc.user, tc.correct) {
			t.Fatalf("%s: expected %q to be accepted for %q", tc.name, tc.user, tc.correct)
		}
	}
}

func TestCheckRejectedAnswers(t *testing.T) {
	cases := []struct {
		name    string
		user    string
		correct string
	}{
		{"strict prefix of long answer", "Wizard", "The Wizard of Oz"},
		{"strict prefix of city name", "Salt Lake", "Salt Lake City"},
		{"qualified place surname", "Orleans", "New Orleans"},
		{"unrelated answer", "London", "Paris"},
		{"bare interrogative phrase", "what is", "Paris"},
		{"empty user answer", "", "Paris"},
		{"whitespace user answer", "   ", "Paris"},
		{"empty correct answer", "Paris", ""},
		{"incomplete list", "red & white", "red, white & blue"},
		{"band is not a list", "Simon", "Simon & Garfunkel"},
		{"insufficient coverage", "grapes", "The Grapes of Wrath"},
	}

	for _, tc := range cases {
		if Check(tc.user, tc.correct) {
			t.Fatalf("%s: expected %q to be rejected for %q", tc.name, tc.user, tc.correct)
		}
	}
}

func TestCheckReflexive(t *testing.T) {
	answers := []string{"Paris", "The Wizard of Oz", "Ernest Hemingway", "red, white & blue", "42"}
	for _, a := range answers {
		if !Check(a, a) {
			t.Fatalf("expected %q to match itself", a)
		}
	}
}

func TestCheckAsymmetry(t *testing.T) {
	// Question-phrase stripping only applies to the user side.
	if !Check("what is Paris", "Paris") {
		t.Fatal("expected question-phrased user answer to be accepted")
	}
	if Check("Paris", "what is Paris") {
		t.Fatal("expected question-phrased correct answer to require the full phrase")
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		name    string
		user    string
		correct string
		base    int
		want    int
	}{
		{"exact match", "Paris", "Paris", 200, 200},
		{"question phrase keeps full points", "what is Paris", "Paris", 400, 400},
		{"wrong answer", "London", "Paris", 200, 0},
		{"rule accepted is discounted", "Beatles", "The Beatles", 200, 160},
		{"discount floors", "Beatles", "The Beatles", 25, 20},
		{"zero base", "Paris", "Paris", 0, 0},
		{"negative base", "Paris", "Paris", -100, 0},
	}

	for _, tc := range cases {
		if got := Points(tc.user, tc.correct, tc.base); got != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.want, got)
		}
	}
}

func TestPointsBounded(t *testing.T) {
	users := []string{"", "what is", "Paris", "the beatles", "seven"}
	corrects := []string{"", "Paris", "The Beatles", "7"}
	for _, u := range users {
		for _, c := range corrects {
			for _, base := range []int{0, 100, 333} {
				got := Points(u, c, base)
				discounted := int(float64(base) * fuzzyPointsFactor)
				if got != 0 && got != base && got != discounted {
					t.Fatalf("Points(%q, %q, %d) = %d, outside {0, %d, %d}", u, c, base, got, discounted, base)
				}
			}
		}
	}
}

func TestExpandVariants(t *testing.T) {
	got := expandVariants("Abraham Lincoln (or Honest Abe)")
	want := map[string]bool{
		"Abraham Lincoln (or Honest Abe)": true,
		"Abraham Lincoln or Honest Abe":   true,
		"Honest Abe":                      true,
	}
	for _, v := range got {
		delete(want, v)
	}
	if len(want) != 0 {
		t.Fatalf("missing variants %v in %v", want, got)
	}
}

func TestIsProperNoun(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Ernest Hemingway", true},
		{"Simon & Garfunkel", true},
		{"New Orleans", true},
		{"red, white & blue", false},
		{"The Wizard of Oz", false},
		{"Paris", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isProperNoun(tc.in); got != tc.want {
			t.Fatalf("isProperNoun(%q): expected %v got %v", tc.in, tc.want, got)
		}
	}
}
