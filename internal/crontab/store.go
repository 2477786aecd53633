package crontab

import (
	"errors"
	"strings"

	"github.com/obentoo/granola-cron/internal/common/shell"
)

// ErrSchedulerUnavailable is returned when the crontab program cannot be found
var ErrSchedulerUnavailable = errors.New("crontab command not available")

// Store reads and replaces the whole cron table
type Store interface {
	// Read returns the current table, empty when the user has none
	Read() (Table, error)

	// Write replaces the table with t
	Write(t Table) error
}

// CommandStore accesses the table through the crontab program
type CommandStore struct {
	runner shell.Executor
	binary string
}

// NewCommandStore creates a CommandStore running the crontab program found on PATH
func NewCommandStore(runner shell.Executor) *CommandStore {
	return &CommandStore{
		runner: runner,
		binary: "crontab",
	}
}

// Read runs `crontab -l`. A user without a table reads as an empty Table.
func (s *CommandStore) Read() (Table, error) {
	if _, err := s.runner.LookPath(s.binary); err != nil {
		return nil, errors.Join(ErrSchedulerUnavailable, err)
	}

	stdout, stderr, err := s.runner.Run("", s.binary, "-l")
	if err != nil {
		if isNoCrontab(stderr) || isNoCrontab(err.Error()) {
			return Table{}, nil
		}
		return nil, err
	}

	return Parse(stdout), nil
}

// Write pipes the table into `crontab -`, which replaces it in one step
func (s *CommandStore) Write(t Table) error {
	if _, err := s.runner.LookPath(s.binary); err != nil {
		return errors.Join(ErrSchedulerUnavailable, err)
	}

	_, _, err := s.runner.RunWithInput(t.String(), s.binary, "-")
	return err
}

// isNoCrontab matches the message cron implementations print for a missing table
func isNoCrontab(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "no crontab for")
}

var _ Store = (*CommandStore)(nil)
