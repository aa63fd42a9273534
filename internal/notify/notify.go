// Package notify shows short transient messages to the user.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"tubedeck/internal/i18n"

	tea "github.com/charmbracelet/bubbletea"
)

// LongMessageDuration is how long a toast stays on screen.
const LongMessageDuration = 3500 * time.Millisecond

// Notifier shows a message identified by a string resource key.
type Notifier interface {
	ShowLongMessage(key string)
}

// Queue collects messages raised during an update so the TUI root can show
// them once the update returns.
type Queue struct {
	mu      sync.Mutex
	strings *i18n.Strings
	pending []string
}

func NewQueue(strings *i18n.Strings) *Queue {
	return &Queue{strings: strings}
}

func (q *Queue) ShowLongMessage(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, q.strings.Get(key))
}

// Drain returns and forgets the pending messages, oldest first.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// ToastExpiredMsg hides the toast with the matching ID; newer toasts survive.
type ToastExpiredMsg struct {
	ID int
}

// ExpireAfter schedules the expiry of toast id.
func ExpireAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Writer prints messages as lines, for the CLI.
type Writer struct {
	W       io.Writer
	Strings *i18n.Strings
}

func (w Writer) ShowLongMessage(key string) {
	fmt.Fprintln(w.W, w.Strings.Get(key))
}

// Recorder keeps resolved messages in memory; the MCP server returns them
// as tool output.
type Recorder struct {
	mu       sync.Mutex
	strings  *i18n.Strings
	messages []string
}

func NewRecorder(strings *i18n.Strings) *Recorder {
	return &Recorder{strings: strings}
}

func (r *Recorder) ShowLongMessage(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, r.strings.Get(key))
}

// Take returns and clears the recorded messages.
func (r *Recorder) Take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.messages
	r.messages = nil
	return out
}
