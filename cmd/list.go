package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
	"github.com/ShauravBhatt/Devtodo/internal/ui"
)

// listCommand shows the task list with optional filters and sorting.
func listCommand(repo *todo.Repository, args []string) error {
	fs := flag.NewFlagSet("devtodo ls", flag.ContinueOnError)
	priority := priorityFlag(fs)
	tags := tagFlag(fs)
	sortBy := todo.SortByPriority
	fs.Func("sort", "Sort order (priority|created)", func(v string) error {
		switch todo.SortBy(v) {
		case todo.SortByPriority, todo.SortByCreated:
			sortBy = todo.SortBy(v)
			return nil
		}
		return fmt.Errorf("invalid sort order %q (valid: priority, created)", v)
	})
	includeDone := fs.Bool("done", false, "Include completed tasks")
	showCreated := fs.Bool("created", false, "Show creation dates")

	extra, err := parseIntermixed(fs, args)
	if err != nil {
		return err
	}
	if len(extra) > 0 {
		return fmt.Errorf("unexpected arguments: %v", extra)
	}

	res := repo.List(todo.ListOptions{
		Tags:        tags.Values(),
		Priority:    *priority,
		SortBy:      sortBy,
		IncludeDone: *includeDone,
		ShowCreated: *showCreated,
	})
	ui.RenderList(os.Stdout, res, time.Now())
	return nil
}
