package settingsdialog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"tubedeck/internal/settings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

var (
	helpStyleOnce sync.Once
	helpStyle     string
)

// DetectHelpStyle returns the markdown style of the help panel, querying the
// terminal at most once per process. Call it before a Bubble Tea program owns
// the terminal. A query that times out leaves its goroutine blocked until the
// terminal answers; querying once bounds that to a single goroutine.
func DetectHelpStyle(timeout time.Duration) string {
	helpStyleOnce.Do(func() {
		helpStyle = detectGlamourStyle(timeout)
	})
	return helpStyle
}

// detectGlamourStyle picks a markdown style for the terminal background.
// Background queries can hang on some terminals, so the query gives up after
// timeout and assumes a dark background.
func detectGlamourStyle(timeout time.Duration) string {
	style := os.Getenv("GLAMOUR_STYLE")
	if style != "" && style != "auto" {
		return style
	}

	ch := make(chan string, 1)
	go func() {
		if termenv.NewOutput(os.Stdout).HasDarkBackground() {
			ch <- "dark"
			return
		}
		ch <- "light"
	}()

	select {
	case s := <-ch:
		return s
	case <-time.After(timeout):
		return "dark"
	}
}

// helpMarkdown describes the dialog's categories and their current values.
func helpMarkdown(title string, cats []settings.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("Changes are saved as soon as an option is selected.\n\n")
	for _, cat := range cats {
		fmt.Fprintf(&b, "## %s\n\n", cat.Title)
		if cat.Kind == settings.KindRadio {
			b.WriteString("Pick one:\n\n")
		} else {
			b.WriteString("Each option toggles on its own:\n\n")
		}
		for _, opt := range cat.Options {
			mark := ""
			if opt.Selected {
				mark = " **(current)**"
			}
			fmt.Fprintf(&b, "- %s%s\n", opt.Title, mark)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(markdown, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
