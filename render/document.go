package render

import (
	"encoding/json"
	"io"

	"github.com/JonathanHolmbergOy/fizzbuzz/fizzbuzz"
	"github.com/JonathanHolmbergOy/fizzbuzz/version"
	"github.com/google/uuid"
)

// Document is the JSON form of a generated sequence.
type Document struct {
	ID       string   `json:"id"`
	Version  string   `json:"version"`
	Strategy string   `json:"strategy"`
	Start    int      `json:"start"`
	Length   int      `json:"length"`
	Labels   []string `json:"labels"`
}

// NewDocument wraps labels generated for b with a fresh run ID.
func NewDocument(b fizzbuzz.Bounds, strategy string, labels []string) Document {
	if labels == nil {
		labels = []string{}
	}
	return Document{
		ID:       uuid.New().String(),
		Version:  version.GetVersion(),
		Strategy: strategy,
		Start:    b.Start,
		Length:   b.Length,
		Labels:   labels,
	}
}

// Encode writes d as a single line of JSON.
func (d Document) Encode(w io.Writer) error {
	je := json.NewEncoder(w)
	return je.Encode(d)
}
