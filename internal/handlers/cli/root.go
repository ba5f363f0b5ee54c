package cli

import (
	"errors"

	"github.com/AntonioJCosta/pdg/internal/core/domain/invocation"
	"github.com/AntonioJCosta/pdg/internal/core/ports"
	"github.com/spf13/cobra"
)

// ErrNoCommand is returned after the usage table was printed because no command was given.
var ErrNoCommand = errors.New("no command given")

// NewRootCommand builds the pdg command tree: one subcommand per action known to dispatchService.
func NewRootCommand(
	version string,
	dispatchService ports.DispatchService,
) *cobra.Command {
	if dispatchService == nil {
		panic("dispatchService cannot be nil")
	}

	rootCmd := &cobra.Command{
		Use:   "pdg",
		Short: "pdg runs npm and git shorthands.",
		Long: `pdg maps short aliases such as 'i', 'c' or 'cpp' to npm and git command
sequences and runs them in order, stopping at the first failing command.`,
		Version:           version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, dispatchService)
		},
	}

	for _, a := range dispatchService.Actions() {
		rootCmd.AddCommand(NewActionCommand(a, dispatchService))
	}

	return rootCmd
}

// runRootCmd only runs when no subcommand matched: nothing was given, the first
// argument is not a known alias, or the alias followed "--". The dispatcher
// resolves whatever is left and reports unknown aliases itself.
func runRootCmd(
	cmd *cobra.Command,
	args []string,
	dispatchService ports.DispatchService,
) error {
	if len(args) == 0 {
		printUsage(cmd.OutOrStdout(), cmd.Root().Name(), dispatchService.Actions())
		return ErrNoCommand
	}
	return dispatchService.Dispatch(cmd.Context(), invocation.New(args))
}
