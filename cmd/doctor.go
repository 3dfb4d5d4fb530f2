package cmd

import (
	"fmt"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
)

// doctorCommand checks the task file against the schema and reports
// per-record problems. Returns an error (exit 1) when checks fail, so
// it can gate scripts.
func doctorCommand(store *todo.FileStore) error {
	fmt.Println("DevTodo Doctor")
	fmt.Println("==============")
	fmt.Println()

	fmt.Printf("Task file: %s\n", store.Path)
	tasks, err := store.Load()
	if err != nil {
		fmt.Printf("  ❌ Load error: %v\n", err)
		return fmt.Errorf("doctor checks failed")
	}
	if tasks == nil {
		fmt.Println("  ⚠️  Not found (will be created on first add)")
		return nil
	}
	fmt.Println("  ✅ OK")

	pending := 0
	for _, t := range tasks {
		if !t.Done {
			pending++
		}
	}
	fmt.Printf("  Tasks: %d (%d pending, %d done)\n", len(tasks), pending, len(tasks)-pending)
	fmt.Println()

	result := todo.Validate(tasks)
	for _, w := range result.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	if result.Valid {
		fmt.Println("  ✅ Valid")
		return nil
	}

	fmt.Println("  ❌ Validation failed:")
	for _, e := range result.Errors {
		fmt.Printf("     - %v\n", e)
	}
	return fmt.Errorf("doctor checks failed")
}
