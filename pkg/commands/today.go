package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/guiatv/pkg/commands/options"
	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.GuideOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "print the schedule for today or a given day",
		Example: `
guiatv today
guiatv today --day friday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var day guide.Weekday
			if co.Day != "" {
				var err error
				day, err = guide.ParseDay(co.Day)
				if err != nil {
					return err
				}
			}

			_, repo, err := load()
			if err != nil {
				return err
			}
			s := today.Today{
				ShowID:     io.ShowID,
				Day:        day,
				Repository: repo,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDayArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
