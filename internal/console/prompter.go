package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gdg-garage/hotel-admin/internal/screens"
)

var yesAnswers = map[string]bool{"s": true, "si": true, "sí": true, "y": true, "yes": true}

// Prompter asks confirmations on a terminal. With AssumeYes every prompt is
// answered yes without reading input.
type Prompter struct {
	mu        sync.Mutex
	in        *bufio.Reader
	out       io.Writer
	AssumeYes bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Confirm(ctx context.Context, prompt screens.Prompt) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, prompt.Title)
	if prompt.Text != "" {
		fmt.Fprintln(p.out, prompt.Text)
	}
	confirm, cancel := prompt.Confirm, prompt.Cancel
	if confirm == "" {
		confirm = "Sí"
	}
	if cancel == "" {
		cancel = "No"
	}
	fmt.Fprintf(p.out, "[s] %s / [n] %s: ", confirm, cancel)

	if p.AssumeYes {
		fmt.Fprintln(p.out, "s")
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return yesAnswers[strings.ToLower(strings.TrimSpace(line))], nil
}
