package ports

import "github.com/AntonioJCosta/pdg/internal/core/domain/action"

// ActionTableProvider defines the interface for sourcing the dispatcher's
// action table, like an embedded configuration file.
type ActionTableProvider interface {
	// GetActionTable loads the complete table of actions.
	GetActionTable() (action.Table, error)
}
