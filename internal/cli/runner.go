package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/markcj-boi/StateWithRedux/internal/replay"
	"github.com/markcj-boi/StateWithRedux/internal/state"
	"github.com/markcj-boi/StateWithRedux/internal/tui"
	"github.com/markcj-boi/StateWithRedux/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Theme string // demo screen theme name: "light" or "dark"
	Dark  bool   // shorthand for Theme == "dark"
}

// startInDark resolves the flags to the initial dark mode flag.
// Unknown theme names fall back to light.
func startInDark(opt Options) bool {
	return opt.Dark || strings.EqualFold(opt.Theme, "dark")
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doDemo(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "demo":
		return doDemo(opt)

	case "replay":
		if len(a) != 1 {
			ui.Fail("usage: statedemo replay <script.json>")
			return 2
		}
		return doReplay(a[0])
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`statedemo - a state container demo

Usage:
  statedemo [flags] [subcommand]

Subcommands:
  demo               Open the interactive demo screen (the default)
  replay <file>      Apply a JSON transition script and print the final state
  help               Show this help

Flags:
  -theme <name>      Demo screen theme: light (default) or dark
  -dark              Start the demo screen in dark mode (same as -theme dark)

The STATEDEMO_THEME env var sets the default for -theme.

Examples:
  statedemo
  statedemo -theme dark demo
  statedemo replay script.json
`)
}

// ---------------------------------------------------
// Subcommands
// ---------------------------------------------------

func doDemo(opt Options) int {
	store := state.New()
	if startInDark(opt) {
		store.Dispatch(state.ToggleDarkMode{})
	}
	if err := tui.Run(store); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doReplay(path string) int {
	actions, err := replay.Load(path)
	if err != nil {
		ui.Fail("replay: " + err.Error())
		return 1
	}
	snap := replay.Run(actions)
	b, err := replay.Dump(snap)
	if err != nil {
		ui.Fail("replay: " + err.Error())
		return 1
	}
	fmt.Println(string(b))
	ui.OK(fmt.Sprintf("replayed %d transitions", len(actions)))
	return 0
}
