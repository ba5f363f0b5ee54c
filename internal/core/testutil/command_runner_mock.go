package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/pdg/internal/core/ports"
)

// MockCommandRunner is a mock implementation of ports.CommandRunner.
type MockCommandRunner struct {
	// RunFunc allows you to set a custom function for the Run method.
	RunFunc func(ctx context.Context, commandLine string) (int, error)
	// RunCalls keeps track of the command lines passed to Run, in order.
	RunCalls []string
}

// NewMockCommandRunner creates a MockCommandRunner whose commands all succeed.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		RunFunc: func(context.Context, string) (int, error) {
			return 0, nil
		},
		RunCalls: make([]string, 0),
	}
}

// Run records commandLine and calls the mock RunFunc.
func (m *MockCommandRunner) Run(ctx context.Context, commandLine string) (int, error) {
	m.RunCalls = append(m.RunCalls, commandLine)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, commandLine)
	}
	return -1, errors.New("MockCommandRunner.RunFunc not implemented")
}

// Ensure MockCommandRunner satisfies the CommandRunner interface.
var _ ports.CommandRunner = (*MockCommandRunner)(nil)
