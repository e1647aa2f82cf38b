// Package categories lists channel categories on the command line.
package categories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/printers"
	"tableflip.dev/guiatv/pkg/schedule"
)

type Categories struct {
	ShowID     bool
	Repository *schedule.Repository
}

func (c *Categories) Do(ctx context.Context) error {
	if c.Repository == nil {
		return errors.New("can not list categories, no repository")
	}

	all, fromCache := c.Repository.CachedCategories()
	if !fromCache {
		var err error
		all, err = c.Repository.RefreshCategories(ctx)
		if err != nil {
			return err
		}
	}

	ordered := append([]guide.Category(nil), all...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	fmt.Println("")
	pp.Title("Categorías")
	pp.Categories(ordered...)
	return nil
}
