package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Output streams, replaced in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(stdout, prompt+suffix)

	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	printTagged(stdout, successColor, "✓", "OK:", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	printTagged(stdout, infoColor, "ℹ", "INFO:", fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	printTagged(stderr, warningColor, "⚠", "WARNING:", fmt.Sprintf(format, args...))
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	printTagged(stderr, errorColor, "✗", "ERROR:", fmt.Sprintf(format, args...))
}

func printTagged(w io.Writer, c *color.Color, symbol, plain, msg string) {
	if noColor {
		fmt.Fprintf(w, "%s %s\n", plain, msg)
		return
	}
	c.Fprintf(w, "%s ", symbol)
	fmt.Fprintln(w, msg)
}

// Colorize renders s in c unless colors are disabled.
func Colorize(c *color.Color, s string) string {
	if noColor {
		return s
	}
	return c.Sprint(s)
}

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
	if nc {
		color.NoColor = true
	}
}
