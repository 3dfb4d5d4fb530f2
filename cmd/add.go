package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
	"github.com/ShauravBhatt/Devtodo/internal/ui"
)

// addCommand appends a new task. Inline #tags and @priority are
// parsed out of the text; explicit flags win over inline tokens.
func addCommand(repo *todo.Repository, args []string) error {
	fs := flag.NewFlagSet("devtodo add", flag.ContinueOnError)
	priority := priorityFlag(fs)
	tags := tagFlag(fs)

	words, err := parseIntermixed(fs, args)
	if err != nil {
		return err
	}
	text := strings.Join(words, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("usage: devtodo add <text> [--priority <level>] [--tag <tag>]")
	}

	res, err := repo.Add(text, *priority, tags.Values())
	if err != nil {
		var emptyErr *todo.EmptyDescError
		if errors.As(err, &emptyErr) {
			ui.Failf(os.Stdout, "❌ %s", err)
			return nil
		}
		return err
	}

	ui.RenderAdded(os.Stdout, res)
	return nil
}
