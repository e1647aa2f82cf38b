// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// GuideOptions captures common guide selection flags for commands.
type GuideOptions struct {
	Day      string
	Category int
}

// AddDayArg wires the day selection flag on the provided command.
func AddDayArg(cmd *cobra.Command, o *GuideOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		`Specify a day, example: --day=friday. Defaults to today.`)
}

// AddCategoryArg wires the category filter flag on the provided command.
func AddCategoryArg(cmd *cobra.Command, o *GuideOptions) {
	cmd.Flags().IntVarP(&o.Category, "category", "c", 0,
		"Filter by category id. Zero means all categories.")
}

// IDOptions toggles printing backend ids alongside names.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show backend ids.")
}
