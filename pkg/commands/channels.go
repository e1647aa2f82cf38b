package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/guiatv/pkg/commands/options"
	"tableflip.dev/guiatv/pkg/runner/channels"
)

func addChannels(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.GuideOptions{}

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "list the channel lineup",
		Example: `
guiatv channels
guiatv channels --category 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := load()
			if err != nil {
				return err
			}
			s := channels.Channels{
				ShowID:   io.ShowID,
				Category: co.Category,
				Client:   client,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCategoryArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
