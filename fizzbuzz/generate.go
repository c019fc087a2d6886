package fizzbuzz

import (
	"fmt"
	"iter"
	"math"
)

// Bounds is the closed range [Start, Start+Length-1].
type Bounds struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// DefaultBounds covers 1 through 100.
var DefaultBounds = Bounds{Start: 1, Length: 100}

// Validate reports whether b describes a range that can be materialized.
func (b Bounds) Validate() error {
	if b.Length < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, b.Length)
	}
	if b.Start < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStart, b.Start)
	}
	if b.Length > 0 && b.Start > math.MaxInt-(b.Length-1) {
		return fmt.Errorf("%w: range starting at %d with length %d overflows", ErrInvalidLength, b.Start, b.Length)
	}
	return nil
}

// End returns the last integer in the range. It is Start-1 for an empty range.
func (b Bounds) End() int {
	return b.Start + b.Length - 1
}

// All yields each integer in b with its label, in ascending order.
// Labels are computed lazily as the sequence is consumed. b must be valid.
func (b Bounds) All(c Classifier) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < b.Length; i++ {
			n := b.Start + i
			if !yield(n, c(n)) {
				return
			}
		}
	}
}

// GenerateWith materializes the labels for b using c.
func GenerateWith(b Bounds, c Classifier) ([]string, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	labels := make([]string, 0, b.Length)
	for _, label := range b.All(c) {
		labels = append(labels, label)
	}
	return labels, nil
}

// Generate returns the labels for [start, start+length-1] computed by the
// closed-form classifier.
func Generate(start, length int) ([]string, error) {
	return GenerateWith(Bounds{Start: start, Length: length}, Classify)
}
