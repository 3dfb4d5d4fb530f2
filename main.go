// Command devtodo is a per-directory task manager with priorities and tags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ShauravBhatt/Devtodo/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\n👋 Goodbye!")
			return
		}
		fmt.Fprintf(os.Stderr, "❌ Unexpected error: %v\n", err)
		os.Exit(1)
	}
}
