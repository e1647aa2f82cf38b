package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/guiatv/pkg/commands/options"
	"tableflip.dev/guiatv/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "list channel categories",
		Example: `
guiatv categories
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, err := load()
			if err != nil {
				return err
			}
			s := categories.Categories{
				ShowID:     io.ShowID,
				Repository: repo,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
