package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/i474232898/vcweather/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
