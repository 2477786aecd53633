package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		args     []string
		expected string
	}{
		{name: "no args", cmd: "crontab", expected: "crontab"},
		{name: "single arg", cmd: "crontab", args: []string{"-l"}, expected: "crontab -l"},
		{name: "multiple args", cmd: "uv", args: []string{"sync", "--frozen"}, expected: "uv sync --frozen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.cmd, tt.args...); got != tt.expected {
				t.Errorf("Describe() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookPathReturnsAbsolutePath(t *testing.T) {
	requireSh(t)

	path, err := NewRunner().LookPath("sh")
	if err != nil {
		t.Fatalf("LookPath(sh) failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
}

func TestLookPathMissingExecutable(t *testing.T) {
	_, err := NewRunner().LookPath("granola-cron-definitely-missing-binary")
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Errorf("expected ErrExecutableNotFound, got %v", err)
	}
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	requireSh(t)

	dir := t.TempDir()
	stdout, _, err := NewRunner().Run(dir, "sh", "-c", "pwd")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Resolve symlinks, TMPDIR is a symlink on some systems
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(stdout))
	if got != want {
		t.Errorf("expected pwd %q, got %q", want, got)
	}
}

func TestRunFailureJoinsStderr(t *testing.T) {
	requireSh(t)

	_, stderr, err := NewRunner().Run("", "sh", "-c", "echo 'no crontab for tester' >&2; exit 1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("expected ErrCommandFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "no crontab for tester") {
		t.Errorf("expected stderr in error, got %v", err)
	}
	if !strings.Contains(stderr, "no crontab for tester") {
		t.Errorf("expected stderr returned, got %q", stderr)
	}
}

func TestRunFailureWithoutStderr(t *testing.T) {
	requireSh(t)

	_, _, err := NewRunner().Run("", "sh", "-c", "exit 3")
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("expected ErrCommandFailed, got %v", err)
	}
}

func TestRunWithInputFeedsStdin(t *testing.T) {
	requireSh(t)

	input := "0 9 * * * /other/job.sh\n"
	stdout, _, err := NewRunner().RunWithInput(input, "sh", "-c", "cat")
	if err != nil {
		t.Fatalf("RunWithInput failed: %v", err)
	}
	if stdout != input {
		t.Errorf("expected %q echoed back, got %q", input, stdout)
	}
}
