package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlogothetis/tempconv"
)

// Flags for tempconv list
var (
	ListPoints bool // Include the named reference points
)

// NewCmdList returns the [cobra.Command] used for listing the supported
// units.
//
// If --points is specified, the named reference points are listed as
// well, formatted in their own unit.
//
// Usage:
//
//	tempconv list [flags]
//
// Aliases:
//
//	list, l
//
// Flags:
//
//	-p, --points   Include the named reference points
//	-h, --help     help for list
func NewCmdList() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List the supported units",
		Args:    cobra.NoArgs,
		RunE:    listUnits,
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVarP(&ListPoints, "points", "p", false, "Include the named reference points")

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func listUnits(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	for _, u := range []tempconv.Unit{tempconv.Celsius, tempconv.Fahrenheit, tempconv.Kelvin} {
		fmt.Fprintf(w, "%s  %s\n", u.Abbrev(), u)
	}

	if !ListPoints {
		return nil
	}

	fmt.Fprintln(w)

	points := []struct {
		name string
		temp tempconv.Temperature
	}{
		{"absolute zero", tempconv.AbsoluteZero},
		{"water freezes", tempconv.WaterFreezing},
		{"water boils", tempconv.WaterBoiling},
	}
	for _, p := range points {
		fmt.Fprintf(w, "%-14s %s\n", p.name, p.temp)
	}

	return nil
}

func init() {
	RootCommand.AddCommand(NewCmdList())
}
