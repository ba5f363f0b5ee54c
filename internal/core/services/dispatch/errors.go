package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAlias indicates that the invocation carried no command token at all.
var ErrNoAlias = errors.New("no command given")

// ErrUnknownAlias indicates that the command token matched no action.
var ErrUnknownAlias = errors.New("unknown command")

// UsageError reports malformed or missing arguments. No command is run when it is returned.
type UsageError struct {
	Token  string   // The command token the user typed.
	Reason string   // Optional first line, e.g. "Invalid mode: xyz".
	Hints  []string // One or two "Usage: ..." lines.
}

func (e *UsageError) Error() string {
	lines := make([]string, 0, len(e.Hints)+1)
	if e.Reason != "" {
		lines = append(lines, e.Reason)
	}
	lines = append(lines, e.Hints...)
	return strings.Join(lines, "\n")
}

// StepFailure reports a command that ran and exited non-zero. Later steps were skipped.
type StepFailure struct {
	Action   string
	Step     int // 1-indexed
	Total    int
	Command  string
	ExitCode int
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf("'%s' failed at step %d/%d with exit code %d: %s", e.Action, e.Step, e.Total, e.ExitCode, e.Command)
}

/*
ExitCode maps an error returned by the dispatcher to a process exit status.

	nil                -> 0
	*StepFailure       -> the failing command's own exit code
	anything else      -> 1
*/
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var failure *StepFailure
	if errors.As(err, &failure) && failure.ExitCode > 0 {
		return failure.ExitCode
	}
	return 1
}
