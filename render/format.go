package render

import (
	"fmt"
	"io"
)

// Format selects how a sequence is written.
type Format string

const (
	FormatText  Format = "text"
	FormatColor Format = "color"
	FormatJSON  Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatColor, FormatJSON}

// ParseFormat converts a flag value into a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (available: %v)", ErrUnknownFormat, name, Formats)
}

// Text writes one label per line.
func Text(w io.Writer, labels []string) error {
	for _, label := range labels {
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	return nil
}
