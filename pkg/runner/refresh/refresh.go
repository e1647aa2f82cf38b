// Package refresh forces the schedule caches to re-populate.
package refresh

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/guiatv/pkg/schedule"
)

type Refresh struct {
	All        bool
	Repository *schedule.Repository
}

// Do drops the schedule caches and re-fetches them. With All set the
// categories cache is refreshed too.
func (r *Refresh) Do(ctx context.Context) error {
	if r.Repository == nil {
		return errors.New("can not refresh, no repository")
	}

	r.Repository.InvalidateScheduleCache()

	today, err := r.Repository.RefreshTodaySchedules(ctx)
	if err != nil {
		return err
	}
	week, err := r.Repository.RefreshWeekSchedules(ctx)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = fmt.Fprintf(color.Output, "refreshed today (%d channels), week (%d channels)\n",
		len(today), len(week))

	if r.All {
		cats, err := r.Repository.RefreshCategories(ctx)
		if err != nil {
			return err
		}
		_, _ = f.Fprintf(color.Output, "refreshed %d categories\n", len(cats))
	}
	return nil
}
