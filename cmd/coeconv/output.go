package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorOK     = lipgloss.Color("#2CD7C7")
)

var styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Label:   lipgloss.NewStyle().Foreground(colorMuted).Width(15),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(colorOK),
}

// report prints aligned label/value lines, styled only on a terminal.
type report struct {
	w      io.Writer
	styled bool
}

func newReport(w io.Writer) *report {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &report{w: w, styled: styled}
}

func (r *report) title(s string) {
	if r.styled {
		s = styles.Title.Render(s)
	}
	fmt.Fprintln(r.w, s)
}

func (r *report) field(label string, format string, args ...any) {
	value := fmt.Sprintf(format, args...)
	if r.styled {
		fmt.Fprintln(r.w, styles.Label.Render(label+":")+styles.Value.Render(value))
		return
	}
	fmt.Fprintf(r.w, "%-15s%s\n", label+":", value)
}

func (r *report) success(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if r.styled {
		s = styles.Success.Render(s)
	}
	fmt.Fprintln(r.w, s)
}
