// Package console renders prompts to a terminal and reads replies from it.
// It backs the local chat mode, where one actor talks to the dialogue
// service without a broker in between.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/kwonka/internal/models"
)

// Console implements secondary.Transport against a terminal.
type Console struct {
	out io.Writer
	in  *bufio.Scanner
}

// New creates a console bound to the given streams.
func New(out io.Writer, in io.Reader) *Console {
	return &Console{
		out: out,
		in:  bufio.NewScanner(in),
	}
}

// Send renders a prompt. The role and chat ID are shown so pushed
// notifications for other actors are distinguishable in a shared terminal.
func (c *Console) Send(ctx context.Context, role models.Role, chatID int64, prompt models.Prompt) error {
	header := color.New(color.FgCyan).Sprintf("[%s:%d]", role, chatID)

	if prompt.Notice != "" {
		fmt.Fprintf(c.out, "%s %s\n", header, color.New(color.FgYellow).Sprint(prompt.Notice))
	}
	if prompt.Text != "" {
		fmt.Fprintf(c.out, "%s %s\n", header, prompt.Text)
	}
	for _, option := range prompt.Options {
		fmt.Fprintf(c.out, "  %s %s\n", color.New(color.FgGreen).Sprint(">"), option)
	}
	for _, action := range prompt.Actions {
		fmt.Fprintf(c.out, "  %s %s  (send: %s)\n", color.New(color.FgMagenta).Sprint("*"), action.Label, action.Data)
	}
	return nil
}

// ReadLine reads the next input line. Returns io.EOF when input ends.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
