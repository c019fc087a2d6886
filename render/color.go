package render

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/taigrr/colorhash"
)

// Palette holds the foreground colors labels are bucketed into.
var Palette = []string{
	"#FF5F87",
	"#FFAF00",
	"#87D700",
	"#00AFFF",
	"#AF87FF",
	"#5FD7AF",
	"#FF8700",
	"#D7D7D7",
}

// PaletteIndex returns the palette slot for label. The same label always maps
// to the same slot.
func PaletteIndex(label string) int {
	h := colorhash.HashString(label)
	idx := int(h) % len(Palette)
	if idx < 0 {
		idx += len(Palette)
	}
	return idx
}

// Style returns the lipgloss style used to render label.
func Style(label string) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(Palette[PaletteIndex(label)]))
	if _, err := strconv.Atoi(label); err != nil {
		// Word labels stand out from plain numbers.
		style = style.Bold(true)
	}
	return style
}

// Colored writes one styled label per line.
func Colored(w io.Writer, labels []string) error {
	for _, label := range labels {
		if _, err := fmt.Fprintln(w, Style(label).Render(label)); err != nil {
			return err
		}
	}
	return nil
}
