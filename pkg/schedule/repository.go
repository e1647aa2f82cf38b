// Package schedule is the typed data layer between the API client and the
// UI: cached accessors over the cache store, network refreshes that
// re-populate it, and the merge engine that reconciles the two fetch shapes.
package schedule

import (
	"context"
	"time"

	"tableflip.dev/guiatv/pkg/api"
	"tableflip.dev/guiatv/pkg/cache"
	"tableflip.dev/guiatv/pkg/guide"
)

const (
	keyToday      = "today-schedules"
	keyWeek       = "week-schedules"
	keyCategories = "categories"

	// ScheduleTTL keeps schedule caches short-lived; live status goes stale
	// fast. Categories barely change.
	ScheduleTTL   = 5 * time.Minute
	CategoriesTTL = time.Hour
)

// Repository provides cached and fresh access to schedules and categories.
// Cached accessors read only the cache store and never trigger a network
// fetch (the one exception is documented on CachedTodaySchedules).
type Repository struct {
	api   *api.Client
	cache *cache.Store
}

// NewRepository wires a repository over the given client and cache store.
func NewRepository(client *api.Client, store *cache.Store) *Repository {
	return &Repository{api: client, cache: store}
}

// CachedWeekSchedules reads the week cache. A miss returns an empty set with
// fromCache false; phase 2 of the load cycle fetches fresh data.
func (r *Repository) CachedWeekSchedules() (data []guide.ChannelWithSchedules, fromCache bool) {
	var out []guide.ChannelWithSchedules
	if _, ok := r.cache.GetJSON(keyWeek, &out); ok {
		return out, true
	}
	return nil, false
}

// CachedCategories reads the categories cache; same contract as
// CachedWeekSchedules.
func (r *Repository) CachedCategories() (data []guide.Category, fromCache bool) {
	var out []guide.Category
	if _, ok := r.cache.GetJSON(keyCategories, &out); ok {
		return out, true
	}
	return nil, false
}

// PeekTodaySchedules reads the today cache and never fetches. A hit merges
// into the week state exactly like a fresh today result would.
func (r *Repository) PeekTodaySchedules() (data []guide.ChannelWithSchedules, fromCache bool) {
	var out []guide.ChannelWithSchedules
	if _, ok := r.cache.GetJSON(keyToday, &out); ok {
		return out, true
	}
	return nil, false
}

// CachedTodaySchedules reads the today cache; on a miss it fetches (today is
// the fast path and the only dataset worth blocking a cold start on) and
// populates the cache.
func (r *Repository) CachedTodaySchedules(ctx context.Context) (data []guide.ChannelWithSchedules, fromCache bool, err error) {
	var out []guide.ChannelWithSchedules
	if _, ok := r.cache.GetJSON(keyToday, &out); ok {
		return out, true, nil
	}
	fresh, err := r.RefreshTodaySchedules(ctx)
	if err != nil {
		return nil, false, err
	}
	return fresh, false, nil
}

// RefreshTodaySchedules always hits the network and re-populates the cache.
func (r *Repository) RefreshTodaySchedules(ctx context.Context) ([]guide.ChannelWithSchedules, error) {
	data, err := r.api.TodaySchedules(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Set(keyToday, data, ScheduleTTL)
	return data, nil
}

// RefreshWeekSchedules always hits the network and re-populates the cache.
func (r *Repository) RefreshWeekSchedules(ctx context.Context) ([]guide.ChannelWithSchedules, error) {
	data, err := r.api.WeekSchedules(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Set(keyWeek, data, ScheduleTTL)
	return data, nil
}

// RefreshCategories always hits the network and re-populates the cache.
func (r *Repository) RefreshCategories(ctx context.Context) ([]guide.Category, error) {
	data, err := r.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Set(keyCategories, data, CategoriesTTL)
	return data, nil
}

// Banners fetches the active banner set. Banners are decorative and never
// cached; a failed fetch just means no banner strip this session.
func (r *Repository) Banners(ctx context.Context) ([]guide.Banner, error) {
	return r.api.Banners(ctx)
}

// InvalidateScheduleCache clears today and week entries (not categories).
// Called before a forced refresh and on qualifying live events, and the
// removal is visible to the very next read.
func (r *Repository) InvalidateScheduleCache() {
	r.cache.Invalidate(keyToday)
	r.cache.Invalidate(keyWeek)
}
