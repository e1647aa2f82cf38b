// Package ui launches the interactive guide.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/guiatv/pkg/api"
	"tableflip.dev/guiatv/pkg/cache"
	"tableflip.dev/guiatv/pkg/schedule"
	"tableflip.dev/guiatv/pkg/tui/app"
)

type UI struct {
	Config api.Config
}

// Do assembles the client, cache, and repository, and blocks in the TUI
// until the user quits.
func (u *UI) Do(ctx context.Context) error {
	if u.Config == nil {
		return errors.New("can not start ui, no config")
	}
	client, err := api.New(u.Config)
	if err != nil {
		return err
	}
	repo := schedule.NewRepository(client, cache.New(u.Config.BasePath()))
	return app.Run(repo, u.Config.EventsURL())
}
