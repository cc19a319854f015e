package printer

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ %s", fmt.Sprintf(format, a...))
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	yellow.Printf("warning: %s", fmt.Sprintf(format, a...))
}

// Summary prints a labelled statistic line in cyan, aligned for stacking
// several in a row.
func Summary(label string, value any) {
	cyan.Fprintf(os.Stderr, "%-24s %v\n", label+":", value)
}

// Error prints a formatted error with title, explanation, and suggested
// remedies to stderr, then returns a plain error for cobra to exit with.
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "Error: %s\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", explanation)
	}
	if len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\nTry:\n")
		for _, s := range suggestions {
			fmt.Fprintf(os.Stderr, "  • %s\n", strings.ReplaceAll(s, "\n", "\n    "))
		}
	}
	return fmt.Errorf("%s", title)
}
