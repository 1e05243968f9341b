package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/idilsaglam/tareas/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args)
	cancel()
	os.Exit(code)
}
