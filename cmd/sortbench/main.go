// Command sortbench runs the instrumented sorting algorithms over numbers or
// texts and reports time, comparisons and swaps for each of them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
