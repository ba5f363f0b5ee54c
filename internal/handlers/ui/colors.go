package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // For what an alias runs
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
