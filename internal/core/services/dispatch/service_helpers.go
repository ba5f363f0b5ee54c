package dispatch

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/domain/invocation"
	"github.com/kballard/go-shellquote"
)

// planDelegate returns the fixed steps. Trailing arguments are ignored.
func (s *service) planDelegate(a action.Action) []string {
	return renderSteps(a.Steps, "", "")
}

// planInstall appends the package list to the last step.
func (s *service) planInstall(token string, a action.Action, args *invocation.Args) ([]string, error) {
	packages := args.Rest()
	if len(packages) == 0 && a.RequiresPackages() {
		return nil, s.usageError(token, a, "")
	}

	commands := renderSteps(a.Steps, "", "")
	if len(packages) > 0 {
		last := len(commands) - 1
		commands[last] = commands[last] + " " + strings.Join(packages, " ")
	}
	return commands, nil
}

// planCommit uses the next argument as the commit message, or the table default.
func (s *service) planCommit(a action.Action, args *invocation.Args) []string {
	message, ok := args.Next()
	if !ok {
		message = s.resolver.Table().DefaultMessage
	}
	return renderSteps(a.Steps, message, "")
}

// planPublish requires exactly one known publish mode.
func (s *service) planPublish(token string, a action.Action, args *invocation.Args) ([]string, error) {
	mode, ok := args.Next()
	if !ok {
		return nil, s.usageError(token, a, "")
	}
	if !s.resolver.Table().IsPublishMode(mode) {
		return nil, s.usageError(token, a, fmt.Sprintf("Invalid mode: %s", mode))
	}
	return renderSteps(a.Steps, "", mode), nil
}

/*
planCommitPublish accepts either

	<mode>
	<message> <mode>

and rejects every other argument count.
*/
func (s *service) planCommitPublish(token string, a action.Action, args *invocation.Args) ([]string, error) {
	message := s.resolver.Table().DefaultMessage
	var mode string

	switch args.Remaining() {
	case 1:
		mode, _ = args.Next()
	case 2:
		message, _ = args.Next()
		mode, _ = args.Next()
	default:
		return nil, s.usageError(token, a, "")
	}

	if !s.resolver.Table().IsPublishMode(mode) {
		return nil, s.usageError(token, a, fmt.Sprintf("Invalid mode: %s", mode))
	}
	return renderSteps(a.Steps, message, mode), nil
}

// renderSteps fills the placeholders of every step. The message is quoted for a
// POSIX shell so it always reaches the wrapped tool as a single argument; the mode
// is validated against the table before it gets here and is inserted as is.
// cmd.exe does not honour single quotes, so on Windows a message with spaces
// arrives split.
func renderSteps(steps []string, message, mode string) []string {
	replacer := strings.NewReplacer(
		action.MessagePlaceholder, shellquote.Join(message),
		action.ModePlaceholder, mode,
	)
	commands := make([]string, len(steps))
	for i, step := range steps {
		commands[i] = replacer.Replace(step)
	}
	return commands
}

func (s *service) usageError(token string, a action.Action, reason string) *UsageError {
	return &UsageError{
		Token:  token,
		Reason: reason,
		Hints:  s.usageHints(token, a),
	}
}

func (s *service) usageHints(token string, a action.Action) []string {
	prefix := fmt.Sprintf("Usage: %s %s", s.programName, token)
	modes := "(" + strings.Join(s.resolver.Table().PublishModes, "|") + ")"

	switch a.Kind {
	case action.KindInstall, action.KindUninstall:
		return []string{prefix + " <package1> <package2> ..."}
	case action.KindCommit:
		return []string{prefix + " [commit-message]"}
	case action.KindPublish:
		return []string{prefix + " " + modes}
	case action.KindCommitPublish:
		return []string{
			prefix + " <commit-message> " + modes,
			prefix + " " + modes,
		}
	}
	return []string{prefix}
}
