// Package today prints the current schedule grid as text.
package today

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/printers"
	"tableflip.dev/guiatv/pkg/schedule"
)

type Today struct {
	ShowID     bool
	Day        guide.Weekday
	Repository *schedule.Repository
}

// Do prints schedules for the requested day, channel by channel. An empty
// Day means the current day, served from cache when warm.
func (t *Today) Do(ctx context.Context) error {
	if t.Repository == nil {
		return errors.New("can not get schedules, no repository")
	}

	var (
		data []guide.ChannelWithSchedules
		err  error
	)
	day := t.Day
	if day == "" {
		day = guide.DayFor(time.Now())
		data, _, err = t.Repository.CachedTodaySchedules(ctx)
	} else {
		data, err = t.Repository.RefreshWeekSchedules(ctx)
	}
	if err != nil {
		return err
	}

	data = guide.FilterDay(data, day)

	pp := printers.PrettyPrint{ShowID: t.ShowID}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Programación · %s", day.Label()))
	pp.NewLine()

	for _, ch := range data {
		ordered := append([]guide.Schedule(nil), ch.Schedules...)
		sort.SliceStable(ordered, func(i, j int) bool {
			si, _ := guide.Span(ordered[i].StartTime, ordered[i].EndTime)
			sj, _ := guide.Span(ordered[j].StartTime, ordered[j].EndTime)
			return si < sj
		})
		pp.Schedules(ch.Channel, ordered...)
	}
	return nil
}
