package settings

import (
	"fmt"
	"strings"

	"tubedeck/internal/logging"
)

// Dialog is a shown settings session. Selection state lives here; the
// presenter that built it only sees the OnSelect callbacks.
type Dialog struct {
	Title string

	categories []Category
	onDismiss  func()
	dismissed  bool
	logger     *logging.AppLogger
}

// Categories returns a copy of the categories with current selection state.
func (d *Dialog) Categories() []Category {
	return cloneCategories(d.categories)
}

// Select activates option oi of category ci. In a radio category the option
// becomes the only selected one; in a checked category it is toggled. The
// option's callback runs afterwards, and if it fails the previous selection
// state is restored and the error returned.
func (d *Dialog) Select(ci, oi int) error {
	if d.dismissed {
		return ErrDismissed
	}
	if ci < 0 || ci >= len(d.categories) {
		return fmt.Errorf("%w: %d", ErrNoSuchCategory, ci)
	}
	cat := &d.categories[ci]
	if oi < 0 || oi >= len(cat.Options) {
		return fmt.Errorf("%w: %d in %q", ErrNoSuchOption, oi, cat.Title)
	}

	prev := make([]bool, len(cat.Options))
	for i, o := range cat.Options {
		prev[i] = o.Selected
	}

	switch cat.Kind {
	case KindRadio:
		for i := range cat.Options {
			cat.Options[i].Selected = i == oi
		}
	default:
		cat.Options[oi].Selected = !cat.Options[oi].Selected
	}

	opt := cat.Options[oi]
	d.logger.LogUserAction("settings_option_selected", cat.Title+"/"+opt.Title)
	if opt.OnSelect == nil {
		return nil
	}
	if err := opt.OnSelect(opt); err != nil {
		for i := range cat.Options {
			cat.Options[i].Selected = prev[i]
		}
		d.logger.Error("Settings option failed", "category", cat.Title, "option", opt.Title, "error", err)
		return fmt.Errorf("%s: %w", opt.Title, err)
	}
	return nil
}

// Lookup finds a category and option by title, ignoring case.
func (d *Dialog) Lookup(category, option string) (int, int, error) {
	for ci, cat := range d.categories {
		if !strings.EqualFold(cat.Title, category) {
			continue
		}
		for oi, opt := range cat.Options {
			if strings.EqualFold(opt.Title, option) {
				return ci, oi, nil
			}
		}
		return ci, -1, fmt.Errorf("%w: %q in %q", ErrNoSuchOption, option, cat.Title)
	}
	return -1, -1, fmt.Errorf("%w: %q", ErrNoSuchCategory, category)
}

// Dismiss closes the dialog and runs the dismissal callback. Only the first
// call has any effect.
func (d *Dialog) Dismiss() {
	if d.dismissed {
		return
	}
	d.dismissed = true
	d.logger.Debug("Settings dialog dismissed", "title", d.Title)
	if d.onDismiss != nil {
		d.onDismiss()
	}
}

func (d *Dialog) Dismissed() bool {
	return d.dismissed
}
