package main

import (
	"context"
	"fmt"
	"grepc/internal/app"
	"grepc/internal/di"
	"os"

	"go.uber.org/fx"
)

func main() {
	var cli *app.CLI
	container := fx.New(
		di.Module,
		fx.Populate(&cli),
	)
	if err := container.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := container.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	code := cli.Main(os.Args)

	if err := container.Stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}
