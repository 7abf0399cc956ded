package ui

import (
	"fmt"
	"io"
)

// AppTitle is shown in the banner and menu header.
const AppTitle = "alias v2.0"

const banner = `         ###
          ###    #
           ##   ###
           ##    #
           ##
   /###    ##  ###       /###      /###
  / ###  / ##   ###     / ###  /  / #### /
 /   ###/  ##    ##    /   ###/  ##  ###/
##    ##   ##    ##   ##    ##  ####
##    ##   ##    ##   ##    ##    ###
##    ##   ##    ##   ##    ##      ###
##    ##   ##    ##   ##    ##        ###
##    /#   ##    ##   ##    /#   /###  ##
 ####/ ##  ### / ### / ####/ ## / #### /
  ###   ##  ##/   ##/   ###   ##   ###/
`

const separator = "--------------------------------------------------------------------"

// PrintBanner writes the start-up banner.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, HeaderColor(banner))
	fmt.Fprintf(w, "           >>> %s <<<\n", AppTitle)
	fmt.Fprintln(w, DetailColor("< https://github.com/ghostescript/alias >"))
	fmt.Fprintln(w)
}

// PrintMenu writes the main menu.
func PrintMenu(w io.Writer) {
	fmt.Fprintln(w, HeaderColor(fmt.Sprintf("\n--- %s Menu ---", AppTitle)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[1] Create a new alias/command")
	fmt.Fprintln(w, "[2] Aliases/commands (list/delete)")
	fmt.Fprintln(w, "[3] Help message and Exit")
	fmt.Fprintln(w)
}

// PrintSourcingSetup explains how to load the alias file from the shell rc files.
func PrintSourcingSetup(w io.Writer, aliasFile string) {
	fmt.Fprintln(w, InfoColor("\nTo make the alias permanent for future sessions, ensure that your ~/.bashrc and ~/.zshrc files source "+aliasFile+"."))
	fmt.Fprintln(w, InfoColor("You can add the following lines to your ~/.bashrc and ~/.zshrc files if they are not already there:"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, CodeColor(fmt.Sprintf("if [ -f %s ]; then", aliasFile)))
	fmt.Fprintln(w, CodeColor(fmt.Sprintf("    . %s", aliasFile)))
	fmt.Fprintln(w, CodeColor("fi"))
	fmt.Fprintln(w)
}

// PrintActivationHint tells the user to source the alias file in the current shell.
func PrintActivationHint(w io.Writer, aliasFile string) {
	fmt.Fprintln(w, WarningColor("\nIMPORTANT: To activate this alias in your *current* and *permanent* terminal sessions,"))
	fmt.Fprintln(w, WarningColor("you MUST manually run the following command:"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, CodeColor("    source "+aliasFile))
	fmt.Fprintln(w)
}

// PrintMultiShellNote reminds the user that each running shell must re-source the file.
func PrintMultiShellNote(w io.Writer, aliasFile string) {
	fmt.Fprintln(w, DetailColor(fmt.Sprintf("NOTE: If you are running multiple shells (e.g., zsh and bash), you may need to run `source %s` in each shell to see updates. Alternatively, logging out and back in will apply the changes to all new terminal sessions.", aliasFile)))
}

// PrintCreatedInstructions is shown after a new entry was written.
func PrintCreatedInstructions(w io.Writer, aliasFile string) {
	fmt.Fprintf(w, "\n%s\n\n", DetailColor(separator))
	PrintSourcingSetup(w, aliasFile)
	PrintActivationHint(w, aliasFile)
	fmt.Fprintln(w, DetailColor(separator))
}

// PrintHelp is the "Help message and Exit" text.
func PrintHelp(w io.Writer, aliasFile string) {
	fmt.Fprintln(w)
	PrintSourcingSetup(w, aliasFile)
	PrintActivationHint(w, aliasFile)
	fmt.Fprintln(w)
	PrintMultiShellNote(w, aliasFile)
	fmt.Fprintln(w)
}
