package cmd

import (
	"os"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
	"github.com/ShauravBhatt/Devtodo/internal/ui"
)

// statsCommand prints the productivity dashboard.
func statsCommand(repo *todo.Repository) error {
	ui.RenderStats(os.Stdout, repo.Stats())
	return nil
}
