package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zerobrew/zbstrap/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()

	root := cli.NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
