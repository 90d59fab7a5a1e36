package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iw2rmb/tablefield/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := cli.NewApp().Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		os.Exit(1)
	}
}
