package notify

import (
	"bytes"
	"testing"
	"time"

	"tubedeck/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DrainResolvesAndClears(t *testing.T) {
	q := NewQueue(i18n.Default())

	q.ShowLongMessage("msg_restart_app")
	q.ShowLongMessage("unknown_key")

	assert.Equal(t, []string{"Restart the app to apply the changes", "unknown_key"}, q.Drain())
	assert.Empty(t, q.Drain())
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{W: &buf, Strings: i18n.Default()}

	w.ShowLongMessage("msg_restart_app")

	assert.Equal(t, "Restart the app to apply the changes\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(i18n.FromMap("t", map[string]string{"k": "Text"}))

	r.ShowLongMessage("k")

	assert.Equal(t, []string{"Text"}, r.Take())
	assert.Nil(t, r.Take())
}

func TestExpireAfter(t *testing.T) {
	cmd := ExpireAfter(7, time.Millisecond)

	assert.Equal(t, ToastExpiredMsg{ID: 7}, cmd())
}
