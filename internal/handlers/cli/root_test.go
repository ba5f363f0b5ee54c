package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AntonioJCosta/pdg/internal/adapters/actiontable"
	"github.com/AntonioJCosta/pdg/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/pdg/internal/core/services/dispatch"
	"github.com/AntonioJCosta/pdg/internal/core/testutil"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoot struct {
	runner *testutil.MockCommandRunner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	err    error
}

// execute runs the real command tree, with the shipped action table, against a mock runner.
func execute(t *testing.T, args ...string) testRoot {
	t.Helper()

	provider, err := actiontable.NewYAMLProvider()
	require.NoError(t, err)
	resolver, err := aliasresolution.NewService(provider)
	require.NoError(t, err)

	runner := testutil.NewMockCommandRunner()
	rootCmd := NewRootCommand("1.2.3", dispatch.NewService(resolver, runner, "pdg"))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	return testRoot{runner: runner, stdout: &stdout, stderr: &stderr, err: rootCmd.Execute()}
}

func TestNewRootCommand_PanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() { NewRootCommand("dev", nil) })
}

func TestRootCommand_NoArguments(t *testing.T) {
	res := execute(t)

	require.ErrorIs(t, res.err, ErrNoCommand)
	assert.Equal(t, 1, dispatch.ExitCode(res.err))
	assert.Empty(t, res.runner.RunCalls)
	assert.Empty(t, res.stderr.String())

	output := res.stdout.String()
	assert.Contains(t, output, "Usage: pdg <command>")
	for _, want := range []string{
		"install", "uninstall", "install-dev", "install-global",
		"reinstall", "reinstall-module", "reinstall-bundle", "reinstall-pod",
		"commit", "push", "commit-push", "commit-push-publish",
		"merge-mirror", "build", "publish", "lint", "test", "reset-gitignore",
		"git-commit", "git-push", "git-commit-push",
		"npm install --save-dev", "npm run pub:(all|dev|staging|prod)", "git commit and push",
	} {
		assert.Contains(t, output, want)
	}
}

func TestRootCommand_UnknownAlias(t *testing.T) {
	res := execute(t, "deploy")

	require.ErrorIs(t, res.err, dispatch.ErrUnknownAlias)
	assert.EqualError(t, res.err, "unknown command: deploy")
	assert.Equal(t, 1, dispatch.ExitCode(res.err))
	assert.Empty(t, res.runner.RunCalls)
	assert.Empty(t, res.stdout.String())
	assert.Empty(t, res.stderr.String())
}

func TestRootCommand_AliasAfterDoubleDash(t *testing.T) {
	res := execute(t, "--", "c", "wip")

	require.NoError(t, res.err)
	assert.Equal(t, []string{"npm run git:commit wip"}, res.runner.RunCalls)
	assert.Empty(t, res.stdout.String())
}

func TestRootCommand_UnknownAliasAfterDoubleDash(t *testing.T) {
	res := execute(t, "--", "deploy")

	assert.EqualError(t, res.err, "unknown command: deploy")
	assert.Equal(t, 1, dispatch.ExitCode(res.err))
	assert.Empty(t, res.runner.RunCalls)
}

func TestRootCommand_Version(t *testing.T) {
	res := execute(t, "--version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout.String(), "1.2.3")
	assert.Empty(t, res.stderr.String())
	assert.Empty(t, res.runner.RunCalls)
}

func TestActionCommands_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantRuns []string
	}{
		{name: "short alias", args: []string{"b"}, wantRuns: []string{"npm run build"}},
		{name: "long form", args: []string{"build"}, wantRuns: []string{"npm run build"}},
		{name: "long-only alias", args: []string{"test"}, wantRuns: []string{"npm run test"}},
		{name: "install flags pass through", args: []string{"i", "--save-exact", "react"}, wantRuns: []string{"npm install --save-exact react"}},
		{name: "commit default", args: []string{"c"}, wantRuns: []string{"npm run git:commit Update"}},
		{name: "commit push", args: []string{"cp", "wip"}, wantRuns: []string{"npm run git:commit wip", "npm run git:push"}},
		{name: "publish", args: []string{"pub", "dev"}, wantRuns: []string{"npm run pub:dev"}},
		{name: "git commit", args: []string{"gc"}, wantRuns: []string{"git add .", "git commit -m Update"}},
		{name: "git push", args: []string{"gp"}, wantRuns: []string{"git push"}},
		{name: "reinstall pod", args: []string{"rip"}, wantRuns: []string{"npm run reinstall:pod"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)

			require.NoError(t, res.err)
			assert.Equal(t, tt.wantRuns, res.runner.RunCalls)
			assert.Empty(t, res.stdout.String())
			assert.Empty(t, res.stderr.String())
		})
	}
}

func TestActionCommands_UsageErrorsNameTheTypedToken(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{args: []string{"id"}, wantErr: "Usage: pdg id <package1> <package2> ..."},
		{args: []string{"install-dev"}, wantErr: "Usage: pdg install-dev <package1> <package2> ..."},
		{args: []string{"ui"}, wantErr: "Usage: pdg ui <package1> <package2> ..."},
		{args: []string{"pub", "xyz"}, wantErr: "Invalid mode: xyz\nUsage: pdg pub (all|dev|staging|prod)"},
		{args: []string{"cpp"}, wantErr: "Usage: pdg cpp <commit-message> (all|dev|staging|prod)\nUsage: pdg cpp (all|dev|staging|prod)"},
	}

	for _, tt := range tests {
		t.Run(tt.wantErr, func(t *testing.T) {
			res := execute(t, tt.args...)

			var usageErr *dispatch.UsageError
			require.ErrorAs(t, res.err, &usageErr)
			assert.EqualError(t, res.err, tt.wantErr)
			assert.Equal(t, 1, dispatch.ExitCode(res.err))
			assert.Empty(t, res.runner.RunCalls)
			assert.Empty(t, res.stdout.String())
		})
	}
}

func TestPrintError(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	tests := []struct {
		name       string
		err        error
		wantOutput string
	}{
		{name: "nil", err: nil, wantOutput: ""},
		{name: "no command", err: ErrNoCommand, wantOutput: ""},
		{name: "step failure stays silent", err: &dispatch.StepFailure{ExitCode: 2}, wantOutput: ""},
		{name: "usage error", err: &dispatch.UsageError{Hints: []string{"Usage: pdg id <package1> <package2> ..."}}, wantOutput: "Usage: pdg id <package1> <package2> ...\n"},
		{name: "other error", err: errors.New("unknown command: x"), wantOutput: "unknown command: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}
