package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/AntonioJCosta/pdg/internal/core/ports"
	"github.com/fatih/color"
)

var echoColor = color.New(color.FgCyan)

// ShellRunner implements the CommandRunner interface by handing each command line
// to the operating system's shell with the standard streams attached.
type ShellRunner struct {
	shell     string
	shellFlag string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	echo      io.Writer // Receives "> <command>" before each run; nil disables echoing.
}

// Option configures a ShellRunner.
type Option func(*ShellRunner)

// WithStreams replaces the process's own standard streams.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *ShellRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithEcho sets where command lines are echoed. Pass nil to disable.
func WithEcho(w io.Writer) Option {
	return func(r *ShellRunner) {
		r.echo = w
	}
}

// WithShell overrides the interpreter and the flag that introduces the command string.
func WithShell(shell, flag string) Option {
	return func(r *ShellRunner) {
		r.shell = shell
		r.shellFlag = flag
	}
}

// NewShellRunner creates a ShellRunner using /bin/sh -c (cmd /C on Windows) and the
// process's own standard streams.
func NewShellRunner(opts ...Option) ports.CommandRunner {
	r := &ShellRunner{
		shell:     "/bin/sh",
		shellFlag: "-c",
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		echo:      os.Stdout,
	}
	if runtime.GOOS == "windows" {
		r.shell = "cmd"
		r.shellFlag = "/C"
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run echoes commandLine, runs it and waits for it to exit.
// Non-zero exits are returned as exitCode with a nil error.
func (r *ShellRunner) Run(ctx context.Context, commandLine string) (int, error) {
	if r.echo != nil {
		echoColor.Fprintf(r.echo, "> %s\n", commandLine)
	}

	cmd := exec.CommandContext(ctx, r.shell, r.shellFlag, commandLine)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		// -1 means the process was terminated by a signal.
		if code < 0 {
			code = 1
		}
		return code, nil
	}
	return -1, fmt.Errorf("starting '%s' with shell '%s': %w", commandLine, r.shell, err)
}
