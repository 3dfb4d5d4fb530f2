package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
)

// RunTUI starts the interactive task browser. All mutations go through
// the repository, so every keypress persists the same way the one-shot
// commands do.
func RunTUI(ctx context.Context, repo *todo.Repository) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(repo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	repo   *todo.Repository
	tasks  []todo.Task
	cursor int

	adding bool
	input  textinput.Model
	notice string // transient line under the list, cleared on next action
}

func newTUIModel(repo *todo.Repository) *tuiModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New task (#tags and @priority work here too)..."
	input.CharLimit = 200

	m := &tuiModel{repo: repo, input: input}
	m.reload()
	return m
}

func (m *tuiModel) reload() {
	m.tasks = m.repo.Tasks()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		return m.updateAdding(keyMsg)
	}

	m.notice = ""
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ", "x":
		m.toggleDone()
	case "d":
		m.deleteCurrent()
	case "a":
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case "r", "f5":
		m.reload()
	}
	return m, nil
}

func (m *tuiModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		if raw == "" {
			return m, nil
		}
		res, err := m.repo.Add(raw, 0, nil)
		if err != nil {
			m.notice = errorStyle.Render(err.Error())
			return m, nil
		}
		m.reload()
		m.cursor = res.Index - 1
		m.notice = successStyle.Render("added: " + res.Task.Desc)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) toggleDone() {
	if len(m.tasks) == 0 {
		return
	}
	index := m.cursor + 1
	var err error
	if m.tasks[m.cursor].Done {
		_, _, err = m.repo.MarkUndone(index)
	} else {
		_, _, err = m.repo.MarkDone(index)
	}
	if err != nil {
		m.notice = errorStyle.Render(err.Error())
		return
	}
	m.reload()
}

func (m *tuiModel) deleteCurrent() {
	if len(m.tasks) == 0 {
		return
	}
	removed, err := m.repo.Delete(m.cursor + 1)
	if err != nil {
		m.notice = errorStyle.Render(err.Error())
		return
	}
	m.reload()
	m.notice = dimStyle.Render("deleted: " + removed.Desc)
}

func (m *tuiModel) View() string {
	var b strings.Builder
	now := time.Now()

	pending := 0
	for _, t := range m.tasks {
		if !t.Done {
			pending++
		}
	}
	b.WriteString(titleStyle.Render("DevTodo") +
		dimStyle.Render(fmt.Sprintf("  %d pending / %d total", pending, len(m.tasks))) + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("  No tasks yet. Press a to add one.") + "\n")
	}
	for i, t := range m.tasks {
		line := FormatTask(t, i+1, true, now)
		if t.Done {
			line = doneStyle.Render(line)
		}
		prefix := "  "
		if i == m.cursor && !m.adding {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("j/k move · space toggle · a add · d delete · r refresh · q quit") + "\n")
	return b.String()
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
