package shell

// Executor defines the interface for running external programs.
// This interface allows for mocking the scheduler and dependency manager in tests.
type Executor interface {
	// LookPath resolves an executable name against the search path and
	// returns its absolute location
	LookPath(name string) (string, error)

	// Run executes a program in dir and returns its stdout and stderr
	Run(dir, name string, args ...string) (stdout, stderr string, err error)

	// RunWithInput executes a program feeding input on its stdin
	RunWithInput(input, name string, args ...string) (stdout, stderr string, err error)
}
