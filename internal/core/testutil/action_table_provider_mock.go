package testutil

import (
	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/ports"
)

// MockActionTableProvider is a mock implementation of ports.ActionTableProvider.
type MockActionTableProvider struct {
	GetActionTableFunc func() (action.Table, error)
}

func (m *MockActionTableProvider) GetActionTable() (action.Table, error) {
	if m.GetActionTableFunc != nil {
		return m.GetActionTableFunc()
	}
	return action.Table{}, nil // Default behavior
}

var _ ports.ActionTableProvider = (*MockActionTableProvider)(nil)

// StaticTable returns a provider that always yields table.
func StaticTable(table action.Table) *MockActionTableProvider {
	return &MockActionTableProvider{
		GetActionTableFunc: func() (action.Table, error) {
			return table, nil
		},
	}
}
