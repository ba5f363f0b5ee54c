package ports

import "context"

// CommandRunner defines an interface for running a single shell command line
// with the caller's standard streams attached.
type CommandRunner interface {
	// Run blocks until the command exits. A command that ran and exited non-zero
	// is reported through exitCode with a nil error; err is reserved for commands
	// that could not be started.
	Run(ctx context.Context, commandLine string) (exitCode int, err error)
}
