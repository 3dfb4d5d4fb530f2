// Package ui renders tasks for the terminal and hosts the optional
// interactive browser.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

// Successf prints a green status line.
func Successf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, a...)))
}

// Infof prints a neutral status line.
func Infof(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format+"\n", a...)
}

// Failf prints a red error line.
func Failf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, a...)))
}

// Tipf prints a dimmed hint line.
func Tipf(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(format, a...)))
}
