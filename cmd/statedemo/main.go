package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/markcj-boi/StateWithRedux/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", os.Getenv("STATEDEMO_THEME"), "demo screen theme: light or dark")
	dark := flag.Bool("dark", false, "start the demo screen in dark mode (same as -theme dark)")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Theme: *theme,
		Dark:  *dark,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
