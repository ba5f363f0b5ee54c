package aliasresolution

import (
	"fmt"

	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/ports"
)

type service struct {
	table   action.Table
	byToken map[string]int // token -> index into table.Actions
}

// NewService loads the action table from the provider and indexes every token.
// It panics if the provider is nil.
func NewService(provider ports.ActionTableProvider) (ports.AliasResolver, error) {
	if provider == nil {
		panic("actionTableProvider cannot be nil")
	}

	table, err := provider.GetActionTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load action table: %w", err)
	}

	byToken, err := indexTokens(table.Actions)
	if err != nil {
		return nil, err
	}
	return &service{table: table, byToken: byToken}, nil
}

// Resolve returns the action bound to token. Only exact matches count.
func (s *service) Resolve(token string) (action.Action, bool) {
	idx, ok := s.byToken[token]
	if !ok {
		return action.Action{}, false
	}
	return s.table.Actions[idx], true
}

// Actions returns a copy of the actions in table order.
func (s *service) Actions() []action.Action {
	actions := make([]action.Action, len(s.table.Actions))
	copy(actions, s.table.Actions)
	return actions
}

func (s *service) Table() action.Table {
	return s.table
}

// indexTokens maps both forms of every action to its position and rejects collisions.
func indexTokens(actions []action.Action) (map[string]int, error) {
	byToken := make(map[string]int, len(actions)*2)
	for i, a := range actions {
		for _, token := range a.Tokens() {
			if prev, exists := byToken[token]; exists {
				return nil, fmt.Errorf("token '%s' is claimed by both '%s' and '%s'", token, actions[prev].Name, a.Name)
			}
			byToken[token] = i
		}
	}
	return byToken, nil
}
