package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kailas-cloud/itunes-search/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra already printed the error
	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
