package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier delivers user-facing messages. The core never assumes a GUI.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// NopNotifier drops every message.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Info(string)    {}
func (NopNotifier) Error(string)   {}

// ConsoleNotifier prints messages to a terminal, errors to errOut.
// Colours are only emitted when the writer is a terminal.
type ConsoleNotifier struct {
	out    io.Writer
	errOut io.Writer

	success lipgloss.Style
	info    lipgloss.Style
	failure lipgloss.Style
}

// NewConsoleNotifier builds a notifier writing to out and errOut.
func NewConsoleNotifier(out, errOut io.Writer) *ConsoleNotifier {
	r := lipgloss.NewRenderer(out)
	er := lipgloss.NewRenderer(errOut)
	return &ConsoleNotifier{
		out:     out,
		errOut:  errOut,
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		info:    r.NewStyle().Foreground(lipgloss.Color("244")),
		failure: er.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

func (n *ConsoleNotifier) Success(msg string) {
	fmt.Fprintln(n.out, n.success.Render(msg))
}

func (n *ConsoleNotifier) Info(msg string) {
	fmt.Fprintln(n.out, n.info.Render(msg))
}

func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintln(n.errOut, n.failure.Render(msg))
}
