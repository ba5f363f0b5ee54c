package ports

import (
	"context"

	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/domain/invocation"
)

// Plan is the fully rendered list of command lines for one invocation.
type Plan struct {
	Action   action.Action
	Commands []string
}

// DispatchService defines the contract for turning an invocation into commands and running them.
type DispatchService interface {
	// Plan resolves the alias, validates the trailing arguments and renders the commands
	// without running anything.
	Plan(args *invocation.Args) (Plan, error)

	// Dispatch plans the invocation and runs its commands in order, stopping at the first failure.
	Dispatch(ctx context.Context, args *invocation.Args) error

	// Actions lists every action the service can dispatch, for usage output.
	Actions() []action.Action
}
