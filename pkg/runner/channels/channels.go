// Package channels lists the channel lineup on the command line.
package channels

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/guiatv/pkg/api"
	"tableflip.dev/guiatv/pkg/printers"
)

type Channels struct {
	ShowID   bool
	Category int
	Client   *api.Client
}

func (c *Channels) Do(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("can not list channels, no client")
	}

	all, err := c.Client.Channels(ctx)
	if err != nil {
		return err
	}
	if c.Category != 0 {
		kept := all[:0]
		for _, ch := range all {
			for _, cat := range ch.Categories {
				if cat.ID == c.Category {
					kept = append(kept, ch)
					break
				}
			}
		}
		all = kept
	}

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	fmt.Println("")
	pp.Title("Canales")
	pp.Channels(all...)
	return nil
}
