package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/pdg/internal/core/domain/action"
	"github.com/AntonioJCosta/pdg/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// printUsage writes the enumeration of every alias and what it runs.
func printUsage(w io.Writer, programName string, actions []action.Action) {
	fmt.Fprintln(w, ui.HeaderColor(fmt.Sprintf("Usage: %s <command>", programName)))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Command", "Runs"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range actions {
		table.Append([]string{ui.AliasNameColor(a.Alias), ui.AliasCmdColor(a.Name), ui.DetailColor(a.Description)})
	}
	table.Render()
}
