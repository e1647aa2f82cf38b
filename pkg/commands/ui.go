package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/guiatv/pkg/api"
	"tableflip.dev/guiatv/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive schedule grid",
		Example: `
guiatv ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := api.LoadConfig()
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
