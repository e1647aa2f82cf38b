package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/guiatv/pkg/runner/refresh"
)

func addRefresh(topLevel *cobra.Command) {
	var all bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "drop cached schedules and fetch fresh data",
		Example: `
guiatv refresh
guiatv refresh --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, err := load()
			if err != nil {
				return err
			}
			s := refresh.Refresh{
				All:        all,
				Repository: repo,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also refresh the categories cache.")

	topLevel.AddCommand(cmd)
}
