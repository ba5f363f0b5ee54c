package cli

import (
	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/domain/invocation"
	"github.com/AntonioJCosta/pdg/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewActionCommand creates the subcommand for a single action. The long name is the
// command name and the short alias, if any, is its only cobra alias.
func NewActionCommand(a action.Action, dispatchService ports.DispatchService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   a.Name,
		Short: a.Description,
		// Trailing arguments are npm/git payload, including their flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActionCmd(cmd, args, dispatchService)
		},
	}
	if a.Alias != "" {
		cmd.Aliases = []string{a.Alias}
	}
	return cmd
}

func runActionCmd(
	cmd *cobra.Command,
	args []string,
	dispatchService ports.DispatchService,
) error {
	token := cmd.CalledAs()
	if token == "" {
		token = cmd.Name()
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, token)
	argv = append(argv, args...)

	return dispatchService.Dispatch(cmd.Context(), invocation.New(argv))
}
