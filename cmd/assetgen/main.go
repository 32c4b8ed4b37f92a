// Command assetgen produces the game's sprite set from the built-in catalog.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], newCLI(os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}
