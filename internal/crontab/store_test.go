package crontab

import (
	"errors"
	"reflect"
	"testing"

	"github.com/obentoo/granola-cron/internal/common/shell"
)

func TestCommandStoreRead(t *testing.T) {
	mock := shell.NewMockRunner()
	mock.RunFunc = func(dir, name string, args ...string) (string, string, error) {
		if name != "crontab" || len(args) != 1 || args[0] != "-l" {
			t.Errorf("unexpected command %s %v", name, args)
		}
		return "0 9 * * * /other/job.sh\n", "", nil
	}

	table, err := NewCommandStore(mock).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(table, Table{"0 9 * * * /other/job.sh"}) {
		t.Errorf("Read() = %q", table)
	}
}

func TestCommandStoreReadWithoutTable(t *testing.T) {
	mock := shell.NewMockRunner()
	mock.RunFunc = func(dir, name string, args ...string) (string, string, error) {
		return "", "no crontab for tester\n", errors.Join(shell.ErrCommandFailed, errors.New("no crontab for tester"))
	}

	table, err := NewCommandStore(mock).Read()
	if err != nil {
		t.Fatalf("expected missing table to read as empty, got %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %q", table)
	}
}

func TestCommandStoreReadFailure(t *testing.T) {
	mock := shell.NewMockRunner()
	mock.RunFunc = func(dir, name string, args ...string) (string, string, error) {
		return "", "permission denied", errors.Join(shell.ErrCommandFailed, errors.New("permission denied"))
	}

	if _, err := NewCommandStore(mock).Read(); !errors.Is(err, shell.ErrCommandFailed) {
		t.Errorf("expected ErrCommandFailed, got %v", err)
	}
}

func TestCommandStoreWrite(t *testing.T) {
	mock := shell.NewMockRunner()
	var input string
	mock.RunWithInputFunc = func(in, name string, args ...string) (string, string, error) {
		if name != "crontab" || len(args) != 1 || args[0] != "-" {
			t.Errorf("unexpected command %s %v", name, args)
		}
		input = in
		return "", "", nil
	}

	table := Table{"0 9 * * * /other/job.sh", "", "# Granola Meeting Analyzer"}
	if err := NewCommandStore(mock).Write(table); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if input != "0 9 * * * /other/job.sh\n\n# Granola Meeting Analyzer\n" {
		t.Errorf("unexpected crontab input %q", input)
	}
}

func TestCommandStoreWithoutCrontab(t *testing.T) {
	mock := &shell.MockRunner{}
	store := NewCommandStore(mock)

	if _, err := store.Read(); !errors.Is(err, ErrSchedulerUnavailable) {
		t.Errorf("Read: expected ErrSchedulerUnavailable, got %v", err)
	}
	if err := store.Write(Table{}); !errors.Is(err, ErrSchedulerUnavailable) {
		t.Errorf("Write: expected ErrSchedulerUnavailable, got %v", err)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("expected no commands run, got %v", mock.Calls)
	}
}
