// Package formhost edits a settings dialog with a huh form, for the
// non-fullscreen `settings edit` command. Radio categories become selects,
// checked categories become multi-selects; on submit only the options whose
// state changed are applied, through the dialog, so callbacks run exactly as
// they would in the TUI.
package formhost

import (
	"context"
	"errors"
	"slices"

	"tubedeck/internal/settings"
	"tubedeck/internal/tui/styles"

	"github.com/charmbracelet/huh"
)

// Form is a huh form bound to a dialog.
type Form struct {
	dialog  *settings.Dialog
	radio   map[int]*int
	checked map[int]*[]int
	form    *huh.Form
}

func NewForm(d *settings.Dialog) *Form {
	f := &Form{
		dialog:  d,
		radio:   make(map[int]*int),
		checked: make(map[int]*[]int),
	}

	var fields []huh.Field
	for ci, cat := range d.Categories() {
		// huh cannot render a field without options
		if len(cat.Options) == 0 {
			continue
		}
		opts := make([]huh.Option[int], len(cat.Options))
		for oi, o := range cat.Options {
			opts[oi] = huh.NewOption(o.Title, oi).Selected(o.Selected)
		}

		switch cat.Kind {
		case settings.KindRadio:
			v := selectedIndex(cat)
			f.radio[ci] = &v
			fields = append(fields, huh.NewSelect[int]().
				Title(cat.Title).
				Options(opts...).
				Value(f.radio[ci]))
		default:
			v := selectedIndexes(cat)
			f.checked[ci] = &v
			fields = append(fields, huh.NewMultiSelect[int]().
				Title(cat.Title).
				Options(opts...).
				Value(f.checked[ci]))
		}
	}

	f.form = huh.NewForm(huh.NewGroup(fields...).Title(d.Title)).
		WithTheme(styles.HuhTheme())
	return f
}

// Huh exposes the underlying form.
func (f *Form) Huh() *huh.Form {
	return f.form
}

// Run shows the form and applies the result. A user abort dismisses the
// dialog without applying anything.
func (f *Form) Run(ctx context.Context) error {
	if err := f.form.RunWithContext(ctx); err != nil {
		f.dialog.Dismiss()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	return f.Apply()
}

// Apply selects every option whose state differs from the form values, then
// dismisses the dialog. Failed selections do not stop the others.
func (f *Form) Apply() error {
	defer f.dialog.Dismiss()

	var errs []error
	for ci, cat := range f.dialog.Categories() {
		switch cat.Kind {
		case settings.KindRadio:
			want, ok := f.radio[ci]
			if !ok || *want == selectedIndex(cat) || *want < 0 {
				continue
			}
			if err := f.dialog.Select(ci, *want); err != nil {
				errs = append(errs, err)
			}
		default:
			want, ok := f.checked[ci]
			if !ok {
				continue
			}
			for oi, o := range cat.Options {
				if slices.Contains(*want, oi) == o.Selected {
					continue
				}
				if err := f.dialog.Select(ci, oi); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}

func selectedIndex(cat settings.Category) int {
	for i, o := range cat.Options {
		if o.Selected {
			return i
		}
	}
	return -1
}

func selectedIndexes(cat settings.Category) []int {
	var out []int
	for i, o := range cat.Options {
		if o.Selected {
			out = append(out, i)
		}
	}
	return out
}
