package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// State colors
	Installed = color.New(color.FgGreen)
	Replaced  = color.New(color.FgCyan)
	Absent    = color.New(color.FgYellow)

	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header = color.New(color.FgWhite, color.Bold)
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// StateColor returns the color for an entry state
func StateColor(state string) *color.Color {
	switch state {
	case "Installed":
		return Installed
	case "Replaced":
		return Replaced
	case "Absent":
		return Absent
	default:
		return color.New(color.Reset)
	}
}

// FormatState formats a state label with its color
func FormatState(state string) string {
	return StateColor(state).Sprintf("[%s]", state)
}

// FormatTable renders cron table lines, numbering them and highlighting the
// lines for which highlight returns true
func FormatTable(lines []string, highlight func(string) bool) string {
	if len(lines) == 0 {
		return Dim.Sprint("  (empty crontab)")
	}

	var sb strings.Builder
	for i, line := range lines {
		num := Dim.Sprintf("%3d │ ", i+1)
		if highlight != nil && highlight(line) {
			line = Installed.Sprint(line)
		}
		sb.WriteString(num + line)
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Printf("⚠ "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Printf("→ "+format+"\n", args...)
}

// Box prints a boxed list of lines
func Box(title string, lines ...string) {
	fmt.Println()
	Header.Println("┌─ " + title + " ─")
	for _, line := range lines {
		fmt.Println("│  " + line)
	}
	Header.Println("└────────────────")
	fmt.Println()
}
