// Package guide defines the program-guide domain types as delivered by the
// backend, plus the weekday partitioning and clock parsing helpers shared by
// the repository, the merge engine, and the grid.
package guide

// Category groups channels for client-side filtering.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// Channel is immutable within a session; the week fetch replaces it
// wholesale.
type Channel struct {
	ID                    int        `json:"id"`
	Name                  string     `json:"name"`
	Description           string     `json:"description,omitempty"`
	LogoURL               string     `json:"logo_url,omitempty"`
	Handle                string     `json:"handle,omitempty"`
	Order                 int        `json:"order,omitempty"`
	IsVisible             bool       `json:"is_visible,omitempty"`
	BackgroundColor       string     `json:"background_color,omitempty"`
	ShowOnlyWhenScheduled bool       `json:"show_only_when_scheduled,omitempty"`
	Categories            []Category `json:"categories,omitempty"`
}

// Panelist appears on a program.
type Panelist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChannelRef is the abbreviated channel shape embedded in a program.
type ChannelRef struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Program is the content a schedule points at. IsLive is mutated server-side
// by live-status polling and refreshed through the today endpoint.
type Program struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	LogoURL       string     `json:"logo_url,omitempty"`
	Description   string     `json:"description,omitempty"`
	StreamURL     string     `json:"stream_url,omitempty"`
	IsLive        bool       `json:"is_live"`
	StreamCount   int        `json:"stream_count,omitempty"`
	Panelists     []Panelist `json:"panelists,omitempty"`
	Channel       ChannelRef `json:"channel"`
	StyleOverride string     `json:"style_override,omitempty"`
}

// Schedule is one program occurrence on one channel on one day. StartTime and
// EndTime are "HH:MM:SS" clock strings; EndTime textually before StartTime
// means the program crosses midnight.
type Schedule struct {
	ID         int     `json:"id"`
	DayOfWeek  Weekday `json:"day_of_week"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Subscribed bool    `json:"subscribed"`
	Program    Program `json:"program"`
}

// ChannelWithSchedules is the aggregate exchanged between the repository, the
// merge engine, and the grid: one channel plus its ordered schedule list.
type ChannelWithSchedules struct {
	Channel   Channel    `json:"channel"`
	Schedules []Schedule `json:"schedules"`
}

// Banner is a decorative promotional strip entry.
type Banner struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	LinkType     string `json:"link_type,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	IsEnabled    bool   `json:"is_enabled"`
	DisplayOrder int    `json:"display_order"`
	IsFixed      bool   `json:"is_fixed,omitempty"`
	Priority     int    `json:"priority,omitempty"`
	BannerType   string `json:"banner_type,omitempty"`
}

// FilterDay keeps only schedules for the given day, dropping channels left
// with nothing to show. Pure: inputs are never mutated.
func FilterDay(channels []ChannelWithSchedules, day Weekday) []ChannelWithSchedules {
	out := make([]ChannelWithSchedules, 0, len(channels))
	for _, ch := range channels {
		kept := make([]Schedule, 0, len(ch.Schedules))
		for _, s := range ch.Schedules {
			if s.DayOfWeek == day {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, ChannelWithSchedules{Channel: ch.Channel, Schedules: kept})
	}
	return out
}

// FilterCategory keeps channels that belong to the given category id. A zero
// id means no filtering.
func FilterCategory(channels []ChannelWithSchedules, categoryID int) []ChannelWithSchedules {
	if categoryID == 0 {
		return channels
	}
	out := make([]ChannelWithSchedules, 0, len(channels))
	for _, ch := range channels {
		for _, cat := range ch.Channel.Categories {
			if cat.ID == categoryID {
				out = append(out, ch)
				break
			}
		}
	}
	return out
}
