package crontab

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// Marker tags lines owned by the analyzer
	Marker = "granola_processor"
	// DisplayName is written as the comment line above the entry
	DisplayName = "Granola Meeting Analyzer"
	// DefaultSchedule runs the analyzer daily at 17:00
	DefaultSchedule = "0 17 * * *"
	// DefaultScript is the analysis command invoked by the entry
	DefaultScript = "analyze_meetings.py"
)

// Entry describes the scheduled invocation of the analyzer
type Entry struct {
	Schedule          string // five-field cron expression or @descriptor
	ProjectDir        string // absolute, the entry changes into it first
	DependencyManager string // absolute path to the dependency manager
	Script            string // analysis script run through the dependency manager
	LogFile           string // absolute redirection target for stdout and stderr
}

// Comment returns the comment line written above the command line
func (e Entry) Comment() string {
	return "# " + DisplayName
}

// Line returns the cron table line for the entry
func (e Entry) Line() string {
	schedule := e.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}
	script := e.Script
	if script == "" {
		script = DefaultScript
	}
	return fmt.Sprintf("%s cd %s && %s run python %s >> %s 2>&1",
		schedule, Quote(e.ProjectDir), Quote(e.DependencyManager), Quote(script), Quote(e.LogFile))
}

// Quote prepares a word for the command part of a cron line. Words made only
// of safe characters are returned unchanged; anything else is single-quoted
// for the shell. Every % is escaped because cron turns a bare % into a newline.
func Quote(word string) string {
	if word != "" && isSafeWord(word) {
		return word
	}
	quoted := "'" + strings.ReplaceAll(word, "'", `'\''`) + "'"
	return strings.ReplaceAll(quoted, "%", `\%`)
}

func isSafeWord(word string) bool {
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_@+=:,./-", r):
		default:
			return false
		}
	}
	return true
}

// Matcher decides whether a table line belongs to the analyzer
type Matcher struct {
	signatures []string
}

// NewMatcher returns a Matcher recognizing the marker, the display name and
// the given script names. Empty script names are ignored.
func NewMatcher(scripts ...string) Matcher {
	sigs := []string{Marker, DisplayName}
	for _, s := range scripts {
		if s != "" {
			sigs = append(sigs, s)
		}
	}
	return Matcher{signatures: sigs}
}

// DefaultMatcher recognizes entries invoking DefaultScript
func DefaultMatcher() Matcher {
	return NewMatcher(DefaultScript)
}

// Matches reports whether line belongs to the analyzer
func (m Matcher) Matches(line string) bool {
	for _, sig := range m.signatures {
		if strings.Contains(line, sig) {
			return true
		}
	}
	return false
}

// SplitLine separates a cron line into its schedule and command parts.
// Descriptors such as @daily occupy a single field. The command is returned
// verbatim so quoted words keep their inner spacing.
func SplitLine(line string) (schedule, command string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", "", false
	}

	n := 5
	if strings.HasPrefix(fields[0], "@") {
		n = 1
	}
	if len(fields) <= n {
		return "", "", false
	}

	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	for i := 0; i < n; i++ {
		rest = strings.TrimLeftFunc(strings.TrimPrefix(rest, fields[i]), unicode.IsSpace)
	}

	return strings.Join(fields[:n], " "), strings.TrimRightFunc(rest, unicode.IsSpace), true
}
