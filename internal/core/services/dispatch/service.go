package dispatch

import (
	"context"
	"fmt"

	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/domain/invocation"
	"github.com/AntonioJCosta/pdg/internal/core/ports"
)

type service struct {
	resolver    ports.AliasResolver
	runner      ports.CommandRunner
	programName string // Used in usage hints.
}

// NewService creates a new dispatch service.
// It panics if the resolver or runner is nil.
func NewService(resolver ports.AliasResolver, runner ports.CommandRunner, programName string) ports.DispatchService {
	if resolver == nil {
		panic("aliasResolver cannot be nil")
	}
	if runner == nil {
		panic("commandRunner cannot be nil")
	}
	return &service{
		resolver:    resolver,
		runner:      runner,
		programName: programName,
	}
}

// Plan reads the alias from args, validates what follows it and renders the command lines.
func (s *service) Plan(args *invocation.Args) (ports.Plan, error) {
	token, ok := args.Next()
	if !ok {
		return ports.Plan{}, ErrNoAlias
	}

	a, ok := s.resolver.Resolve(token)
	if !ok {
		return ports.Plan{}, fmt.Errorf("%w: %s", ErrUnknownAlias, token)
	}

	var commands []string
	var err error
	switch a.Kind {
	case action.KindDelegate:
		commands = s.planDelegate(a)
	case action.KindInstall, action.KindUninstall:
		commands, err = s.planInstall(token, a, args)
	case action.KindCommit:
		commands = s.planCommit(a, args)
	case action.KindPublish:
		commands, err = s.planPublish(token, a, args)
	case action.KindCommitPublish:
		commands, err = s.planCommitPublish(token, a, args)
	default:
		err = fmt.Errorf("action '%s' has unsupported kind '%s'", a.Name, a.Kind)
	}
	if err != nil {
		return ports.Plan{}, err
	}

	return ports.Plan{Action: a, Commands: commands}, nil
}

// Dispatch runs the planned commands one after another and stops at the first failure.
func (s *service) Dispatch(ctx context.Context, args *invocation.Args) error {
	plan, err := s.Plan(args)
	if err != nil {
		return err
	}

	for i, commandLine := range plan.Commands {
		exitCode, err := s.runner.Run(ctx, commandLine)
		if err != nil {
			return fmt.Errorf("could not run step %d/%d of '%s': %w", i+1, len(plan.Commands), plan.Action.Name, err)
		}
		if exitCode != 0 {
			return &StepFailure{
				Action:   plan.Action.Name,
				Step:     i + 1,
				Total:    len(plan.Commands),
				Command:  commandLine,
				ExitCode: exitCode,
			}
		}
	}
	return nil
}

func (s *service) Actions() []action.Action {
	return s.resolver.Actions()
}
