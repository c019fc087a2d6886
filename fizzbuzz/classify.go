package fizzbuzz

import (
	"math"
	"strconv"
)

// Labels produced for multiples of 3, 5 and 15.
const (
	Fizz     = "Fizz"
	Buzz     = "Buzz"
	FizzBuzz = "FizzBuzz"
)

// period is the least common multiple of the divisors; every term of the
// series repeats with it.
const period = 15

// Index returns the table index for n: 0 when n is divisible by neither 3 nor
// 5, 1 when only by 3, 2 when only by 5 and 3 when by both.
func Index(n int) int {
	// Reducing by the period keeps the cosine arguments small, so the float64
	// error stays far below the 0.5 rounding margin for any int.
	x := float64(n % period)
	f := 11.0/15.0 +
		(2.0/3.0)*math.Cos(2*math.Pi*x/3) +
		(4.0/5.0)*(math.Cos(2*math.Pi*x/5)+math.Cos(4*math.Pi*x/5))
	return int(math.Round(f))
}

// Classify returns the FizzBuzz label for n.
//
// Zero is divisible by both 3 and 5 and classifies as "FizzBuzz". Negative
// numbers follow the same periodicity, so -3 is "Fizz" and -7 is "-7".
func Classify(n int) string {
	labels := [4]string{strconv.Itoa(n), Fizz, Buzz, FizzBuzz}
	return labels[Index(n)]
}
