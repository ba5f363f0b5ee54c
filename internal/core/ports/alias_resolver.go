package ports

import "github.com/AntonioJCosta/pdg/internal/core/domain/action"

/*
AliasResolver maps a command token to its action. Matching is exact and
case-sensitive; short aliases and long names resolve to the same action.
*/
type AliasResolver interface {
	// Resolve returns the action bound to token and true, or false if no action matches.
	Resolve(token string) (action.Action, bool)

	// Actions lists every known action in table order.
	Actions() []action.Action

	// Table returns the table the resolver was built from.
	Table() action.Table
}
