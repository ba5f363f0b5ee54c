package actiontable

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed actions.yaml
var embeddedActions []byte

// YAMLProvider implements the ActionTableProvider interface
// by decoding the action table compiled into the binary.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider.
func NewYAMLProvider() (ports.ActionTableProvider, error) {
	return &YAMLProvider{}, nil
}

// GetActionTable parses the embedded action table and validates every entry.
func (p *YAMLProvider) GetActionTable() (action.Table, error) {
	var table action.Table

	if len(embeddedActions) == 0 {
		return table, fmt.Errorf("embedded action table is empty")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(embeddedActions))
	decoder.KnownFields(true)

	if err := decoder.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return action.Table{}, fmt.Errorf("embedded action table has no document")
		}
		return action.Table{}, fmt.Errorf("failed to unmarshal embedded action table: %w", err)
	}

	if err := validateTable(table); err != nil {
		return action.Table{}, fmt.Errorf("invalid embedded action table: %w", err)
	}
	return table, nil
}

// validateTable checks the per-entry rules the dispatcher relies on.
// Token uniqueness is left to the resolver, which owns the lookup.
func validateTable(table action.Table) error {
	if table.DefaultMessage == "" {
		return fmt.Errorf("default_message must not be empty")
	}
	if len(table.PublishModes) == 0 {
		return fmt.Errorf("publish_modes must list at least one mode")
	}
	if len(table.Actions) == 0 {
		return fmt.Errorf("no actions defined")
	}

	for i, a := range table.Actions {
		if a.Name == "" {
			return fmt.Errorf("action #%d has no name", i+1)
		}
		if !a.Kind.Valid() {
			return fmt.Errorf("action '%s' has unknown kind '%s'", a.Name, a.Kind)
		}
		if len(a.Steps) == 0 {
			return fmt.Errorf("action '%s' has no steps", a.Name)
		}
		if a.Kind == action.KindInstall && !a.Install.Valid() {
			return fmt.Errorf("action '%s' has unknown install variant '%s'", a.Name, a.Install)
		}
		if a.Kind != action.KindInstall && a.Install != "" {
			return fmt.Errorf("action '%s' sets install variant on kind '%s'", a.Name, a.Kind)
		}

		joined := strings.Join(a.Steps, "\n")
		wantsMessage := a.Kind == action.KindCommit || a.Kind == action.KindCommitPublish
		wantsMode := a.Kind == action.KindPublish || a.Kind == action.KindCommitPublish
		if wantsMessage != strings.Contains(joined, action.MessagePlaceholder) {
			return fmt.Errorf("action '%s' of kind '%s' misuses %s", a.Name, a.Kind, action.MessagePlaceholder)
		}
		if wantsMode != strings.Contains(joined, action.ModePlaceholder) {
			return fmt.Errorf("action '%s' of kind '%s' misuses %s", a.Name, a.Kind, action.ModePlaceholder)
		}
	}
	return nil
}
