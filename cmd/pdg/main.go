package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AntonioJCosta/pdg/internal/adapters/actiontable"
	"github.com/AntonioJCosta/pdg/internal/adapters/oscommand"
	"github.com/AntonioJCosta/pdg/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/pdg/internal/core/services/dispatch"
	"github.com/AntonioJCosta/pdg/internal/handlers/cli"
	"github.com/AntonioJCosta/pdg/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	tableProvider, err := actiontable.NewYAMLProvider()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing action table provider: %v", err)))
		os.Exit(1)
	}

	resolver, err := aliasresolution.NewService(tableProvider)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error loading aliases: %v", err)))
		os.Exit(1)
	}

	runner := oscommand.NewShellRunner()
	dispatchSvc := dispatch.NewService(resolver, runner, "pdg")
	rootCmd := cli.NewRootCommand(Version, dispatchSvc)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(dispatch.ExitCode(err))
	}
}
