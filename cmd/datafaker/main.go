// Command datafaker generates deterministic synthetic rows for the
// images_analytical table and bulk-loads them with resumable checkpoints.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// register all backends with the storage factory.
	_ "datafaker/internal/storage/all"
)

func main() {
	// A second signal while shutting down is absorbed by the already
	// cancelled context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
