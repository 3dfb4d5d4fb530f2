package cmd

import (
	"errors"
	"os"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
	"github.com/ShauravBhatt/Devtodo/internal/ui"
)

// doneCommand completes a task by its list number.
func doneCommand(repo *todo.Repository, args []string) error {
	index, err := parseIndex("done", args)
	if err != nil {
		return err
	}

	task, changed, err := repo.MarkDone(index)
	if err != nil {
		return reportRangeErr(err)
	}
	if !changed {
		ui.Infof(os.Stdout, "ℹ️  Task %d is already completed", index)
		return nil
	}
	ui.Successf(os.Stdout, "✅ Completed task %d: %s", index, task.Desc)
	return nil
}

// undoneCommand reopens a completed task.
func undoneCommand(repo *todo.Repository, args []string) error {
	index, err := parseIndex("undone", args)
	if err != nil {
		return err
	}

	task, changed, err := repo.MarkUndone(index)
	if err != nil {
		return reportRangeErr(err)
	}
	if !changed {
		ui.Infof(os.Stdout, "ℹ️  Task %d is already pending", index)
		return nil
	}
	ui.Infof(os.Stdout, "⏳ Reopened task %d: %s", index, task.Desc)
	return nil
}

// rmCommand deletes a task. Later task numbers shift down by one.
func rmCommand(repo *todo.Repository, args []string) error {
	index, err := parseIndex("rm", args)
	if err != nil {
		return err
	}

	removed, err := repo.Delete(index)
	if err != nil {
		return reportRangeErr(err)
	}
	status := "pending"
	if removed.Done {
		status = "completed"
	}
	ui.Infof(os.Stdout, "🗑️  Removed %s task: %s", status, removed.Desc)
	return nil
}

// clearCommand removes every completed task.
func clearCommand(repo *todo.Repository) error {
	removed := repo.ClearCompleted()
	if len(removed) == 0 {
		ui.Infof(os.Stdout, "ℹ️  No completed tasks to clear")
		return nil
	}
	ui.RenderCleared(os.Stdout, removed)
	return nil
}

// reportRangeErr prints out-of-range task numbers as a user-facing
// message, not a process failure. Anything else propagates.
func reportRangeErr(err error) error {
	var rangeErr *todo.RangeError
	if errors.As(err, &rangeErr) {
		ui.Failf(os.Stdout, "❌ %s", err)
		return nil
	}
	return err
}
