// Package notifier delivers the short status messages (toasts) the admin
// screens emit after each action.
package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Toast struct {
	Level Level
	Title string
	Text  string
}

func Success(title, text string) Toast { return Toast{Level: LevelSuccess, Title: title, Text: text} }

func Error(title, text string) Toast { return Toast{Level: LevelError, Title: title, Text: text} }

func Info(title, text string) Toast { return Toast{Level: LevelInfo, Title: title, Text: text} }

type Notifier interface {
	Notify(ctx context.Context, toast Toast) error
}

// Console writes one line per toast.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

var levelMarks = map[Level]string{
	LevelSuccess: "✔",
	LevelError:   "✖",
	LevelInfo:    "ℹ",
}

func (c *Console) Notify(_ context.Context, toast Toast) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mark, ok := levelMarks[toast.Level]
	if !ok {
		mark = "·"
	}
	line := fmt.Sprintf("%s %s", mark, toast.Title)
	if toast.Text != "" {
		line += ": " + toast.Text
	}
	_, err := fmt.Fprintln(c.w, line)
	return err
}

// Multi delivers to the primary notifier and then to every secondary one.
// Only the primary's error is returned; secondary failures are logged.
type Multi struct {
	primary     Notifier
	secondaries []Notifier
}

func NewMulti(primary Notifier, secondaries ...Notifier) *Multi {
	return &Multi{primary: primary, secondaries: secondaries}
}

func (m *Multi) Notify(ctx context.Context, toast Toast) error {
	err := m.primary.Notify(ctx, toast)
	for _, n := range m.secondaries {
		if serr := n.Notify(ctx, toast); serr != nil {
			logrus.WithError(serr).WithField("title", toast.Title).Warn("Secondary notifier failed")
		}
	}
	return err
}

// Discard drops every toast.
type Discard struct{}

func (Discard) Notify(context.Context, Toast) error { return nil }
