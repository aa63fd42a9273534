// Package settings is the generic settings dialog controller. Presenters
// append categories of options to a Controller and show them as a Dialog;
// a Host renders the dialog and feeds user selections back through it.
package settings

import "errors"

// Kind tells how the options of a category relate to each other.
type Kind int

const (
	// KindRadio categories have exactly one selected option.
	KindRadio Kind = iota
	// KindChecked categories toggle each option independently.
	KindChecked
)

func (k Kind) String() string {
	switch k {
	case KindRadio:
		return "radio"
	case KindChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// Option is a single selectable row. OnSelect receives the option with its
// Selected field already updated to the new state.
type Option struct {
	Title    string
	Selected bool
	OnSelect func(Option) error
}

// Category is a labeled group of options.
type Category struct {
	Title   string
	Kind    Kind
	Options []Option
}

// Host renders a dialog. Present must not block; the host keeps the dialog
// and calls Select and Dismiss as the user interacts with it.
type Host interface {
	Present(d *Dialog)
}

// HostFunc adapts a function to Host.
type HostFunc func(d *Dialog)

func (f HostFunc) Present(d *Dialog) { f(d) }

var (
	ErrNoSuchCategory = errors.New("no such category")
	ErrNoSuchOption   = errors.New("no such option")
	ErrDismissed      = errors.New("dialog already dismissed")
)
