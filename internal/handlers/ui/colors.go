package ui

import "github.com/fatih/color"

// Status messages printed by the menu and the subcommands.
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	HeaderColor  = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Alias file listing: "N:" prefix, the alias keyword, the declared name and
// the remainder of the line.
var (
	DetailColor       = color.New(color.FgHiBlack).SprintFunc()
	AliasKeywordColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasNameColor    = color.New(color.FgYellow).SprintFunc()
	AliasBodyColor    = color.New(color.FgWhite).SprintFunc()
)

// CodeColor marks shell lines the user is meant to copy, like `source FILE`.
var CodeColor = color.New(color.FgWhite).SprintFunc()

// SetColorEnabled turns coloured output on or off for the whole process.
// --no-color and `color: false` in the config file switch it off.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}
