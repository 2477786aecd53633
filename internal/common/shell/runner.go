package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	ErrExecutableNotFound = errors.New("executable not found in PATH")
	ErrCommandFailed      = errors.New("command failed")
)

// Runner executes programs on the host
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// LookPath resolves name on PATH and makes the result absolute
func (r *Runner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// Run executes a program in dir and returns stdout, stderr, and any error
func (r *Runner) Run(dir, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return run(cmd)
}

// RunWithInput executes a program with input written to its stdin
func (r *Runner) RunWithInput(input, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(input)
	return run(cmd)
}

func run(cmd *exec.Cmd) (stdout, stderr string, err error) {
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		// Wrap the error with stderr for context
		if msg := strings.TrimSpace(stderr); msg != "" {
			err = errors.Join(ErrCommandFailed, errors.New(msg))
		} else {
			err = errors.Join(ErrCommandFailed, err)
		}
	}

	return stdout, stderr, err
}

// Describe renders a command line for log output
func Describe(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

var _ Executor = (*Runner)(nil)
