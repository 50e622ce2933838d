package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"grievance-portal-go/internal/cli"
	"grievance-portal-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(log).ExecuteContext(ctx); err != nil {
		log.Error("app: command failed", "err", err)
		stop()
		os.Exit(1)
	}
}
