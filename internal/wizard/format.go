// Package wizard implements the guided prompt flow for building a DM-32
// codeplug without touching flags or config files. It collects answers on
// the terminal and renders them into plan options for the codeplug package.
package wizard

import (
	"fmt"
	"os"
	"strings"
)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"
	green = "\033[32m"
	cyan  = "\033[36m"
)

// colorEnabled reports whether stdout is a terminal. When output is piped
// or redirected, ANSI escape codes are suppressed.
func colorEnabled() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// colorize wraps text with an ANSI color sequence.
// Returns the text unchanged when color output is disabled.
func colorize(color, text string) string {
	if !colorEnabled() {
		return text
	}
	return color + text + reset
}

// header returns a bold section header, or plain text when color is off.
func header(title string) string {
	if colorEnabled() {
		return bold + title + reset
	}
	return title
}

// Banner prints the wizard title block.
func Banner() {
	fmt.Println()
	fmt.Println(header("DM-32 Interactive Codeplug Builder"))
	fmt.Println(strings.Repeat("=", 40))
}
