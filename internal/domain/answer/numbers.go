package answer

// numberWords maps spelled-out numbers to their digit form so that
// "seven" and "7" count as the same token.
var numberWords = map[string]string{
	"zero":      "0",
	"one":       "1",
	"two":       "2",
	"three":     "3",
	"four":      "4",
	"five":      "5",
	"six":       "6",
	"seven":     "7",
	"eight":     "8",
	"nine":      "9",
	"ten":       "10",
	"eleven":    "11",
	"twelve":    "12",
	"thirteen":  "13",
	"fourteen":  "14",
	"fifteen":   "15",
	"sixteen":   "16",
	"seventeen": "17",
	"eighteen":  "18",
	"nineteen":  "19",
	"twenty":    "20",
	"thirty":    "30",
	"forty":     "40",
	"fifty":     "50",
	"sixty":     "60",
	"seventy":   "70",
	"eighty":    "80",
	"ninety":    "90",
	"hundred":   "100",
	"thousand":  "1000",
	"million":   "1000000",
}

func numberToDigits(word string) string {
	if digits, ok := numberWords[word]; ok {
		return digits
	}
	return word
}

// numbersMatch reports whether two tokens denote the same number. At least
// one side must actually be a number word; two identical non-number tokens
// are handled by the exact-equality rule instead.
func numbersMatch(a, b string) bool {
	da, db := numberToDigits(a), numberToDigits(b)
	if da == a && db == b {
		return false
	}
	return da == db
}
