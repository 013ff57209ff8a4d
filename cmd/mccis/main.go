// Command mccis computes a Maximum Common Connected Induced Subgraph of two
// graphs given as CSV adjacency matrices, and benchmarks the search on
// generated graph families.
//
// Usage:
//
//	mccis [flags] G1.csv G2.csv
//	mccis bench [flags]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals cancel the command context.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
