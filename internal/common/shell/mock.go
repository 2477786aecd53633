package shell

// MockRunner implements Executor for testing.
// Each method can be configured with a custom function to control behavior.
type MockRunner struct {
	LookPathFunc     func(name string) (string, error)
	RunFunc          func(dir, name string, args ...string) (string, string, error)
	RunWithInputFunc func(input, name string, args ...string) (string, string, error)

	// Calls records every Run and RunWithInput invocation as a command line
	Calls []string
}

// NewMockRunner creates a MockRunner whose LookPath resolves every name under /usr/bin
func NewMockRunner() *MockRunner {
	return &MockRunner{
		LookPathFunc: func(name string) (string, error) {
			return "/usr/bin/" + name, nil
		},
	}
}

// LookPath resolves an executable name
func (m *MockRunner) LookPath(name string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(name)
	}
	return "", ErrExecutableNotFound
}

// Run executes a program in dir
func (m *MockRunner) Run(dir, name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, Describe(name, args...))
	if m.RunFunc != nil {
		return m.RunFunc(dir, name, args...)
	}
	return "", "", nil
}

// RunWithInput executes a program feeding input on its stdin
func (m *MockRunner) RunWithInput(input, name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, Describe(name, args...))
	if m.RunWithInputFunc != nil {
		return m.RunWithInputFunc(input, name, args...)
	}
	return "", "", nil
}

// Ensure MockRunner implements Executor interface
var _ Executor = (*MockRunner)(nil)
