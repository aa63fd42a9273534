package settings

import (
	"fmt"
	"io"
)

// Marker returns the textual selection marker for an option of kind k.
func Marker(k Kind, selected bool) string {
	switch {
	case k == KindRadio && selected:
		return "(•)"
	case k == KindRadio:
		return "( )"
	case selected:
		return "[x]"
	default:
		return "[ ]"
	}
}

// WriteText prints the dialog as plain text, one option per line.
func WriteText(w io.Writer, d *Dialog) error {
	if _, err := fmt.Fprintf(w, "%s\n", d.Title); err != nil {
		return err
	}
	for _, cat := range d.categories {
		if _, err := fmt.Fprintf(w, "\n%s\n", cat.Title); err != nil {
			return err
		}
		for _, opt := range cat.Options {
			if _, err := fmt.Fprintf(w, "  %s %s\n", Marker(cat.Kind, opt.Selected), opt.Title); err != nil {
				return err
			}
		}
	}
	return nil
}
