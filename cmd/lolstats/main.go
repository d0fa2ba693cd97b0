package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/lol-stats/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Deps{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Open:          cli.OpenStore,
		DefaultDriver: os.Getenv("DB_DRIVER"),
		DefaultDSN:    os.Getenv("DB_URL"),
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
