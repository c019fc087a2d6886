package fizzbuzz

import "strconv"

// Rule maps a divisor to the label used for its multiples.
type Rule struct {
	Divisor int
	Label   string
}

// Rules is an ordered rule table. The first rule whose divisor divides n wins,
// so more specific divisors must come first.
type Rules []Rule

// DefaultRules is the FizzBuzz rule table.
var DefaultRules = Rules{
	{Divisor: 15, Label: FizzBuzz},
	{Divisor: 5, Label: Buzz},
	{Divisor: 3, Label: Fizz},
}

// Classify returns the label of the first matching rule, or the decimal
// string of n when no rule matches. Rules with a zero divisor never match.
func (r Rules) Classify(n int) string {
	for _, rule := range r {
		if rule.Divisor != 0 && n%rule.Divisor == 0 {
			return rule.Label
		}
	}
	return strconv.Itoa(n)
}
