package fizzbuzz

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestGenerateFirstFifteen(t *testing.T) {
	expected := []string{"1", "2", "Fizz", "4", "Buzz", "Fizz", "7", "8", "Fizz", "Buzz", "11", "Fizz", "13", "14", "FizzBuzz"}

	result, err := Generate(1, 15)
	if err != nil {
		t.Fatalf("Generate(1, 15) unexpected error: %v", err)
	}
	if !slices.Equal(result, expected) {
		t.Errorf("Generate(1, 15) = %v, expected %v", result, expected)
	}
}

func TestGenerateDefaultBounds(t *testing.T) {
	result, err := Generate(DefaultBounds.Start, DefaultBounds.Length)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(result) != 100 {
		t.Fatalf("len(Generate(1, 100)) = %d, expected 100", len(result))
	}
	for k, label := range result {
		if want := Classify(k + 1); label != want {
			t.Errorf("position %d = %q, expected %q", k+1, label, want)
		}
	}
	if result[99] != "Buzz" {
		t.Errorf("last element = %q, expected Buzz", result[99])
	}
}

func TestGenerateIdempotent(t *testing.T) {
	first, err := Generate(7, 50)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	second, err := Generate(7, 50)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if !slices.Equal(first, second) {
		t.Errorf("repeated Generate(7, 50) differ:\n%v\n%v", first, second)
	}

	// The result is owned by the caller.
	first[0] = "changed"
	third, _ := Generate(7, 50)
	if third[0] != "7" {
		t.Errorf("Generate() returned shared state: first element %q", third[0])
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		length  int
		wantLen int
		wantErr error
	}{
		{name: "empty range", start: 1, length: 0, wantLen: 0},
		{name: "single element", start: 15, length: 1, wantLen: 1},
		{name: "offset start", start: 90, length: 11, wantLen: 11},
		{name: "negative length", start: 1, length: -1, wantErr: ErrInvalidLength},
		{name: "zero start", start: 0, length: 10, wantErr: ErrInvalidStart},
		{name: "negative start", start: -5, length: 10, wantErr: ErrInvalidStart},
		{name: "overflowing end", start: math.MaxInt - 1, length: 3, wantErr: ErrInvalidLength},
		{name: "end at max int", start: math.MaxInt - 2, length: 3, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.start, tt.length)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Generate(%d, %d) error = %v, expected %v", tt.start, tt.length, err, tt.wantErr)
				}
				if result != nil {
					t.Errorf("Generate(%d, %d) returned partial result %v", tt.start, tt.length, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate(%d, %d) unexpected error: %v", tt.start, tt.length, err)
			}
			if len(result) != tt.wantLen {
				t.Errorf("len(Generate(%d, %d)) = %d, expected %d", tt.start, tt.length, len(result), tt.wantLen)
			}
		})
	}
}

func TestGenerateWithRules(t *testing.T) {
	b := Bounds{Start: 1, Length: 300}
	cosine, err := GenerateWith(b, Classify)
	if err != nil {
		t.Fatalf("GenerateWith(cosine) unexpected error: %v", err)
	}
	rules, err := GenerateWith(b, DefaultRules.Classify)
	if err != nil {
		t.Fatalf("GenerateWith(rules) unexpected error: %v", err)
	}
	if !slices.Equal(cosine, rules) {
		t.Errorf("cosine and rules strategies disagree over %v", b)
	}
}

func TestBoundsAllStopsEarly(t *testing.T) {
	calls := 0
	counting := func(n int) string {
		calls++
		return Classify(n)
	}

	var seen []int
	for n, label := range DefaultBounds.All(counting) {
		seen = append(seen, n)
		if label == FizzBuzz {
			break
		}
	}

	if len(seen) != 15 || seen[0] != 1 || seen[14] != 15 {
		t.Errorf("All() yielded %v, expected 1 through 15", seen)
	}
	if calls != 15 {
		t.Errorf("classifier called %d times, expected 15", calls)
	}
}

func TestBoundsEnd(t *testing.T) {
	if end := DefaultBounds.End(); end != 100 {
		t.Errorf("DefaultBounds.End() = %d, expected 100", end)
	}
	if end := (Bounds{Start: 5, Length: 0}).End(); end != 4 {
		t.Errorf("empty Bounds.End() = %d, expected 4", end)
	}
}
