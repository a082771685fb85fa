package ui

import (
	"fmt"
	"os"
	"strings"
)

// ------- minimal terminal output helpers -------

var out = Light()

// OK prints a success line to stdout.
func OK(msg string) {
	fmt.Println(out.Success.Render("✔ " + msg))
}

// Fail prints an error line to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, out.Error.Render("✖ "+msg))
}

// ProgressBar renders a Unicode progress bar with a done/total suffix.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	denom := total
	if denom <= 0 {
		denom = 1
	}
	filled := int(float64(done) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}
