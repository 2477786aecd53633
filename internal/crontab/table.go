package crontab

import "strings"

// Table is the ordered content of a cron table, one element per line
type Table []string

// Parse splits crontab output into lines. A single trailing newline does not
// produce an extra empty line and empty input yields an empty Table.
func Parse(data string) Table {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return Table{}
	}
	return Table(strings.Split(data, "\n"))
}

// String renders the table as crontab input, newline terminated
func (t Table) String() string {
	if len(t) == 0 {
		return ""
	}
	return strings.Join(t, "\n") + "\n"
}

// Contains reports whether any line belongs to the analyzer
func (t Table) Contains(m Matcher) bool {
	for _, line := range t {
		if m.Matches(line) {
			return true
		}
	}
	return false
}

// FindEntry returns the first command line belonging to the analyzer.
// Comment lines are skipped.
func (t Table) FindEntry(m Matcher) (string, bool) {
	for _, line := range t {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if m.Matches(line) {
			return line, true
		}
	}
	return "", false
}

// Remove returns the table without the lines belonging to the analyzer and
// whether anything was removed. Unrelated lines keep their relative order.
// When nothing matches the returned table equals the input.
func Remove(t Table, m Matcher) (Table, bool) {
	if !t.Contains(m) {
		return t, false
	}

	kept := make(Table, 0, len(t))
	for _, line := range t {
		if !m.Matches(line) {
			kept = append(kept, line)
		}
	}
	return kept, true
}

// Register returns the table with exactly one entry for e. An existing entry
// is stripped and the fresh one appended; otherwise a blank separator precedes
// the appended entry. Registering the same entry twice yields the same table.
func Register(t Table, e Entry) (Table, bool) {
	m := NewMatcher(e.Script, DefaultScript)

	if stripped, replaced := Remove(t, m); replaced {
		out := make(Table, 0, len(stripped)+2)
		out = append(out, stripped...)
		return append(out, e.Comment(), e.Line()), true
	}

	out := make(Table, 0, len(t)+3)
	out = append(out, t...)
	return append(out, "", e.Comment(), e.Line()), false
}
