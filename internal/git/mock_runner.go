package git

import (
	"context"
	"strings"
	"sync"
)

// MockRunner is a test double for Runner. It replays scripted responses
// keyed by the first matching argument prefix and records every call, so
// tests can assert which git queries ran without a real repository.
type MockRunner struct {
	mu        sync.Mutex
	Responses []MockResponse
	Calls     [][]string
}

// MockResponse maps an argument prefix to a scripted result.
type MockResponse struct {
	ArgsPrefix []string
	Output     string
	Err        error
}

// Run records the call and replays the first response whose prefix matches.
// Calls with no scripted response fail with an ExitError, matching how a
// real runner reports an unexpected invocation.
func (m *MockRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, args)
	m.mu.Unlock()

	for _, r := range m.Responses {
		if hasPrefix(args, r.ArgsPrefix) {
			return r.Output, r.Err
		}
	}
	return "", &ExitError{Args: args, ExitCode: 1, Stderr: "no scripted response"}
}

// CallsMatching returns the recorded calls whose arguments start with the
// given prefix.
func (m *MockRunner) CallsMatching(prefix ...string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched [][]string
	for _, call := range m.Calls {
		if hasPrefix(call, prefix) {
			matched = append(matched, call)
		}
	}
	return matched
}

func hasPrefix(args, prefix []string) bool {
	if len(prefix) > len(args) {
		return false
	}
	for n, p := range prefix {
		if !strings.EqualFold(args[n], p) {
			return false
		}
	}
	return true
}

// Compile-time interface conformance check.
var _ Runner = (*MockRunner)(nil)
