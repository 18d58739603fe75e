package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "snapshot-tool",
		Usage: "inspects and verifies on-disk snapshot block stores",
		Commands: []*cli.Command{
			&Verify,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
