// Package cmd implements the CLI command structure for devtodo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
	"github.com/ShauravBhatt/Devtodo/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "2.0"

// Run executes the devtodo CLI. With no arguments at all it shows the
// welcome screen; an unrecognized subcommand falls back to help.
func Run(ctx context.Context, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "devtodo",
	})

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	store := todo.NewFileStore(cwd)
	repo := todo.NewRepository(store, logger)

	if len(args) == 0 {
		ui.Welcome(os.Stdout, Version, repo.List(todo.ListOptions{SortBy: todo.SortByPriority}), time.Now())
		return nil
	}

	subcommand := args[0]
	rest := args[1:]

	switch subcommand {
	case "add":
		return addCommand(repo, rest)
	case "ls", "list":
		return listCommand(repo, rest)
	case "update":
		return updateCommand(repo, rest)
	case "done":
		return doneCommand(repo, rest)
	case "undone":
		return undoneCommand(repo, rest)
	case "rm":
		return rmCommand(repo, rest)
	case "clear":
		return clearCommand(repo)
	case "stats":
		return statsCommand(repo)
	case "doctor":
		return doctorCommand(store)
	case "tui":
		return ui.RunTUI(ctx, repo)
	case "version", "--version", "-v":
		fmt.Printf("devtodo version %s\n", Version)
		return nil
	case "help", "--help", "-h":
		ui.Help(os.Stdout, Version)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", subcommand)
		ui.Help(os.Stdout, Version)
		return nil
	}
}

// stringList is a repeatable flag value, so --tag can appear more
// than once. A non-nil but empty list still means "explicitly given".
type stringList struct {
	set    bool
	values []string
}

func (s *stringList) String() string {
	return strings.Join(s.values, ",")
}

func (s *stringList) Set(v string) error {
	s.set = true
	s.values = append(s.values, v)
	return nil
}

// Values returns nil when the flag never appeared, distinguishing
// "not given" from "given empty".
func (s *stringList) Values() []string {
	if !s.set {
		return nil
	}
	if s.values == nil {
		return []string{}
	}
	return s.values
}

// priorityFlag registers --priority/-p on fs, enforcing the closed
// level set at parse time.
func priorityFlag(fs *flag.FlagSet) *todo.Priority {
	p := new(todo.Priority)
	setter := func(v string) error {
		level, ok := todo.ParsePriority(v)
		if !ok {
			return fmt.Errorf("invalid priority %q (valid: %s)", v, strings.Join(todo.PriorityNames(), ", "))
		}
		*p = level
		return nil
	}
	fs.Func("priority", "Priority level (low|normal|high|urgent)", setter)
	fs.Func("p", "Priority level (shorthand)", setter)
	return p
}

func tagFlag(fs *flag.FlagSet) *stringList {
	tags := &stringList{}
	fs.Var(tags, "tag", "Tag (repeatable)")
	fs.Var(tags, "t", "Tag (repeatable, shorthand)")
	return tags
}

// parseIntermixed parses fs over args, allowing flags before, after,
// and between positional arguments. Returns the positionals in order.
func parseIntermixed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// parseIndex reads the positional 1-based task number.
func parseIndex(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: devtodo %s <number>", name)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return 0, fmt.Errorf("task number must be a positive integer, got %q", args[0])
	}
	return index, nil
}
