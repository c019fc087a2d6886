// Package fizzbuzz computes the FizzBuzz sequence.
//
// The primary classifier does not branch on divisibility. It evaluates a finite
// Fourier series built from the indicator functions of divisibility by 3 and 5:
//
//	f(n) = 11/15 + (2/3)cos(2πn/3) + (4/5)(cos(2πn/5) + cos(4πn/5))
//
// For every integer n, f(n) is exactly one of 0, 1, 2 or 3, which selects from
// the table [n, "Fizz", "Buzz", "FizzBuzz"]. The same expression can be written
// as I₃(n) + 2·I₅(n) or in terms of the Ramanujan sums c₃ and c₅; all three are
// algebraically identical.
//
// Key Components:
//   - Index and Classify: the closed-form classifier
//   - Rules: an ordered divisor table, kept as a reference strategy
//   - Bounds: a validated [start, start+length-1] range with lazy and eager
//     materialization
//
// Basic usage:
//
//	labels, err := fizzbuzz.Generate(1, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
package fizzbuzz
