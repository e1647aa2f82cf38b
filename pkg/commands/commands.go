package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/guiatv/pkg/api"
	"tableflip.dev/guiatv/pkg/cache"
	"tableflip.dev/guiatv/pkg/schedule"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "guiatv",
		Short: base.Wrap80("A program guide for Argentine streaming channels, in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addToday(topLevel)
	addChannels(topLevel)
	addCategories(topLevel)
	addRefresh(topLevel)
	addVersion(topLevel)
}

// load reads config and assembles the client-side data layer shared by the
// non-interactive commands.
func load() (*api.Client, *schedule.Repository, error) {
	cfg, err := api.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := api.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, schedule.NewRepository(client, cache.New(cfg.BasePath())), nil
}
