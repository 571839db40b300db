package services

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword fallback lexicon, scanned over the lowercased utterance when the
// entity extractor found nothing. Kept deliberately small: it backs up the
// extractor, it does not replace it.

// DefaultPriceCeiling is the price bound implied by budget words like
// "cheap" when no explicit number is given.
const DefaultPriceCeiling = 100.0

var knownCities = []string{"paris", "lyon", "marseille", "nice", "toulouse", "bordeaux", "lille"}

var budgetWords = []string{"cheap", "budget", "affordable", "inexpensive"}

var capacityWords = map[string]int{
	"single": 1,
	"double": 2,
	"triple": 3,
	"family": 4,
}

var cardinalWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

var peopleWords = []string{"people", "person", "persons", "guest", "guests", "pax"}

var (
	priceBoundRe = regexp.MustCompile(`(?:under|below|less than|max|maximum|within)\s*[$€]?\s*(\d+)`)
	partyCountRe = regexp.MustCompile(`\b([1-5])\b`)
)

// cityFromText returns the first known city mentioned in the lowercased
// text, capitalized for querying.
func cityFromText(text string) (string, bool) {
	for _, city := range knownCities {
		if strings.Contains(text, city) {
			return capitalize(city), true
		}
	}
	return "", false
}

// priceFromText finds an explicit upper bound ("under 100") or, failing
// that, maps budget synonyms to the default ceiling.
func priceFromText(text string) (float64, bool) {
	if m := priceBoundRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	for _, w := range budgetWords {
		if strings.Contains(text, w) {
			return DefaultPriceCeiling, true
		}
	}
	return 0, false
}

// partySizeFromText normalizes capacity words, cardinal words and small
// numerals next to a people word into a party size of 1-5.
func partySizeFromText(text string) (int, bool) {
	for w, n := range capacityWords {
		if strings.Contains(text, w) {
			return n, true
		}
	}
	for w, n := range cardinalWords {
		if containsWord(text, w) {
			return n, true
		}
	}
	if hasPeopleWord(text) {
		if m := partyCountRe.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			return n, true
		}
	}
	return 0, false
}

// hasCapacitySignal reports whether the text carries any capacity hint:
// capacity words, people words or a small numeral. Drives the one-shot
// redirect from the city intent.
func hasCapacitySignal(text string) bool {
	for w := range capacityWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	for w := range cardinalWords {
		if containsWord(text, w) {
			return true
		}
	}
	if hasPeopleWord(text) {
		return true
	}
	return partyCountRe.MatchString(text)
}

func hasPeopleWord(text string) bool {
	for _, w := range peopleWords {
		if containsWord(text, w) {
			return true
		}
	}
	return false
}

// roomTypeLabel suggests a room-type name for a party size. The label is
// informational only; it never restricts the actual room query.
func roomTypeLabel(partySize int) string {
	switch {
	case partySize <= 1:
		return "single room"
	case partySize == 2:
		return "double room"
	case partySize == 3:
		return "triple room"
	default:
		return "family room"
	}
}

func containsWord(text, word string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if field == word {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
