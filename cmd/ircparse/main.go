package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ynotnauk/go-irc/cmd/ircparse/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := commands.NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
