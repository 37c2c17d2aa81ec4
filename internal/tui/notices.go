package tui

import (
	"sync"
	"time"
)

// noticeTTL is how long a notice stays on screen before auto-dismissal.
const noticeTTL = 6 * time.Second

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
	at    time.Time
}

// noticeCollector implements workflow.Notifier. Workflow code runs inside
// command goroutines, so notices are buffered under a lock and drained
// into the model on the next Update.
type noticeCollector struct {
	mu      sync.Mutex
	pending []notice
}

func (c *noticeCollector) Success(msg string) { c.push(noticeSuccess, msg) }
func (c *noticeCollector) Error(msg string)   { c.push(noticeError, msg) }
func (c *noticeCollector) Info(msg string)    { c.push(noticeInfo, msg) }

func (c *noticeCollector) push(level noticeLevel, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, notice{level: level, text: msg, at: time.Now()})
}

func (c *noticeCollector) drain() []notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}

// render returns the style for a notice level.
func (n notice) render() string {
	switch n.level {
	case noticeSuccess:
		return NoticeSuccessStyle.Render("✓ " + n.text)
	case noticeError:
		return NoticeErrorStyle.Render("✗ " + n.text)
	default:
		return NoticeInfoStyle.Render("ℹ " + n.text)
	}
}
