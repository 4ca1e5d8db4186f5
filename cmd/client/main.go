package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iudanet/coffeeshop/internal/client/cli"
	"github.com/iudanet/coffeeshop/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	version := fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
	root := cli.New(version, iocli.NewStdio(), os.Stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
