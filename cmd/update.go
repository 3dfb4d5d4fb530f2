package cmd

import (
	"errors"
	"flag"
	"os"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
	"github.com/ShauravBhatt/Devtodo/internal/ui"
)

// updateCommand edits a task in place. A new description is re-parsed
// for inline metadata; --priority and --tag override whatever the
// parser found. --tag replaces the task's tags wholesale.
func updateCommand(repo *todo.Repository, args []string) error {
	fs := flag.NewFlagSet("devtodo update", flag.ContinueOnError)
	desc := fs.String("desc", "", "New description")
	fs.StringVar(desc, "d", "", "New description (shorthand)")
	priority := priorityFlag(fs)
	tags := tagFlag(fs)

	positional, err := parseIntermixed(fs, args)
	if err != nil {
		return err
	}
	index, err := parseIndex("update", positional)
	if err != nil {
		return err
	}

	changes, err := repo.Update(index, todo.UpdateOptions{
		Desc:     *desc,
		Priority: *priority,
		Tags:     tags.Values(),
	})
	if err != nil {
		var rangeErr *todo.RangeError
		var emptyErr *todo.EmptyDescError
		if errors.As(err, &rangeErr) || errors.As(err, &emptyErr) {
			ui.Failf(os.Stdout, "❌ %s", err)
			return nil
		}
		return err
	}

	if len(changes) == 0 {
		ui.Infof(os.Stdout, "ℹ️  No changes made to task %d", index)
		return nil
	}
	ui.RenderChanges(os.Stdout, index, changes)
	return nil
}
