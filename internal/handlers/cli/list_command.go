package cli

import (
	"fmt"
	"strconv"

	"github.com/ghostescript/alias/internal/core/domain/alias"
	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(rt *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lines of the alias file.",
		Long: `Displays every non-blank line of the alias file with its display number.
Alias and function declarations show their kind and name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, rt, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print 'N: line' instead of a table")
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, rt *app, plain bool) error {
	listing, err := rt.svc.ListEntries()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(listing.Lines) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases or functions found in %s.", listing.Path)))
		return nil
	}

	if plain {
		for _, l := range listing.Lines {
			fmt.Fprintln(out, ui.FormatListedLine(l))
		}
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases/Commands in %s:", listing.Path)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Kind", "Name", "Line"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, l := range listing.Lines {
		kind := ""
		if l.Kind != alias.KindOther {
			kind = l.Kind.String()
			if l.Unterminated {
				kind += " (unterminated)"
			}
		}
		table.Append([]string{strconv.Itoa(l.Index), kind, l.Name, l.Text})
	}
	table.Render()
	return nil
}
