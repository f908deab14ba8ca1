package validator

import "regexp"

// planEntry describes the numbering rules for one supported country:
// the accepted national-number lengths (digits only, country code removed)
// and the set of mobile prefixes. All prefixes within one entry share the
// same digit length.
type planEntry struct {
	nationalLengths []int
	mobilePrefixes  []string
}

// numberingPlan maps a country calling code (digits, no separators) to its
// entry. Built once at package initialization and never mutated.
var numberingPlan = map[string]planEntry{
	// USA
	"1": {
		nationalLengths: []int{10},
		mobilePrefixes: []string{
			"202", "212", "310", "408", "415", "510", "650", "213", "323", "424",
			"619", "707", "805", "818", "831", "858", "909", "916", "925", "949",
		},
	},
	// Kenya
	"254": {
		nationalLengths: []int{9},
		mobilePrefixes:  []string{"70", "71", "72", "73", "74", "75", "76", "77", "78", "79"},
	},
	// Tanzania
	"255": {
		nationalLengths: []int{9},
		mobilePrefixes:  []string{"65", "67", "68", "69", "71", "73", "74", "75", "76", "77", "78", "79"},
	},
	// UK
	"44": {
		nationalLengths: []int{10},
		mobilePrefixes:  []string{"74", "75", "77", "78", "79"},
	},
	// India
	"91": {
		nationalLengths: []int{10},
		mobilePrefixes:  []string{"6", "7", "8", "9"},
	},
	// Australia
	"61": {
		nationalLengths: []int{9},
		mobilePrefixes:  []string{"4"},
	},
	// Nigeria
	"234": {
		nationalLengths: []int{10},
		mobilePrefixes:  []string{"70", "80", "81", "90", "91"},
	},
	// Brazil
	"55": {
		nationalLengths: []int{10, 11},
		mobilePrefixes:  []string{"6", "7", "8", "9"},
	},
	// Germany
	"49": {
		nationalLengths: []int{10, 11},
		mobilePrefixes:  []string{"15", "16", "17"},
	},
	// Japan
	"81": {
		nationalLengths: []int{10},
		mobilePrefixes:  []string{"70", "80", "90"},
	},
}

// countryCodeRegex recognizes a dial prefix (+ or 00) immediately followed by
// one of the supported calling codes and at least one further digit. The
// alternation is unambiguous: no supported code is a prefix of another.
var countryCodeRegex = regexp.MustCompile(`^(?:\+|00)(1|254|255|44|91|61|234|55|49|81)[0-9]`)

// lookupCountry extracts the country calling code from a phone string and
// returns its numbering-plan entry. ok is false when the string has no dial
// prefix or the code is not one of the supported ten.
func lookupCountry(phone string) (code string, entry planEntry, ok bool) {
	match := countryCodeRegex.FindStringSubmatch(phone)
	if match == nil {
		return "", planEntry{}, false
	}
	code = match[1]
	entry, ok = numberingPlan[code]
	return code, entry, ok
}
