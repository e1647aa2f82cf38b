package schedule

import "tableflip.dev/guiatv/pkg/guide"

// MergeTodayIntoWeek reconciles the fast today fetch with the slow week
// fetch: for every channel present in both, the given day's schedules are
// replaced with the fresh today data while every other day passes through
// untouched. Channels only in the today payload are appended; channels only
// in the week payload keep their existing data. The merge is pure: neither
// input slice nor any nested value is mutated, since the two fetches resolve
// in arbitrary order and the merge re-runs from whatever state is current.
//
// Duplicate channel ids within one input are not produced by the backend;
// if they appear anyway, the first occurrence wins and the rest are dropped.
func MergeTodayIntoWeek(week, today []guide.ChannelWithSchedules, day guide.Weekday) []guide.ChannelWithSchedules {
	if len(week) == 0 {
		return today
	}

	todayByID := make(map[int]guide.ChannelWithSchedules, len(today))
	for _, ch := range today {
		if _, ok := todayByID[ch.Channel.ID]; !ok {
			todayByID[ch.Channel.ID] = ch
		}
	}

	merged := make([]guide.ChannelWithSchedules, 0, len(week)+len(today))
	weekIDs := make(map[int]struct{}, len(week))
	for _, weekCh := range week {
		if _, dup := weekIDs[weekCh.Channel.ID]; dup {
			continue
		}
		weekIDs[weekCh.Channel.ID] = struct{}{}

		todayCh, ok := todayByID[weekCh.Channel.ID]
		if !ok {
			merged = append(merged, weekCh)
			continue
		}

		schedules := make([]guide.Schedule, 0, len(weekCh.Schedules)+len(todayCh.Schedules))
		for _, s := range weekCh.Schedules {
			if s.DayOfWeek != day {
				schedules = append(schedules, s)
			}
		}
		schedules = append(schedules, todayCh.Schedules...)
		merged = append(merged, guide.ChannelWithSchedules{
			Channel:   weekCh.Channel,
			Schedules: schedules,
		})
	}

	for _, todayCh := range today {
		if _, ok := weekIDs[todayCh.Channel.ID]; !ok {
			weekIDs[todayCh.Channel.ID] = struct{}{}
			merged = append(merged, todayCh)
		}
	}

	return merged
}
