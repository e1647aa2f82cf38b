// Package api is the HTTP client for the program-guide backend. One Client
// is constructed at process start and injected into consumers; nothing in
// this package holds ambient global state.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/guiatv/pkg/guide"
)

// Version is stamped by the build and sent as X-App-Version.
var Version = "dev"

const requestTimeout = 30 * time.Second

// Client talks to the guide backend. All endpoints are read-only GETs and
// safe to call repeatedly.
type Client struct {
	base     string
	events   string
	deviceID string
	http     *http.Client
}

// New builds a Client. The device id is generated once and persisted under
// basePath so the backend sees a stable identity across runs.
func New(cfg Config) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	id, err := deviceID(cfg.BasePath())
	if err != nil {
		return nil, err
	}
	return &Client{
		base:     strings.TrimRight(cfg.BaseURL(), "/"),
		events:   cfg.EventsURL(),
		deviceID: id,
		http:     &http.Client{Timeout: requestTimeout},
	}, nil
}

// EventsURL is the live-event stream endpoint for the listener.
func (c *Client) EventsURL() string { return c.events }

// DeviceID is the persistent identity attached to every request.
func (c *Client) DeviceID() string { return c.deviceID }

// TodaySchedules hits the fast v2 endpoint: today only, live-status
// accurate.
func (c *Client) TodaySchedules(ctx context.Context) ([]guide.ChannelWithSchedules, error) {
	var out []guide.ChannelWithSchedules
	err := c.get(ctx, "/channels/with-schedules/today/v2", url.Values{
		"live_status": {"true"},
		"deviceId":    {c.deviceID},
	}, &out)
	return out, err
}

// WeekSchedules hits the slow endpoint: all seven days.
func (c *Client) WeekSchedules(ctx context.Context) ([]guide.ChannelWithSchedules, error) {
	var out []guide.ChannelWithSchedules
	err := c.get(ctx, "/channels/with-schedules/week", url.Values{
		"live_status": {"true"},
		"deviceId":    {c.deviceID},
	}, &out)
	return out, err
}

// SchedulesByDay fetches a single day partition.
func (c *Client) SchedulesByDay(ctx context.Context, day guide.Weekday) ([]guide.ChannelWithSchedules, error) {
	var out []guide.ChannelWithSchedules
	err := c.get(ctx, "/channels/with-schedules", url.Values{
		"day":         {string(day)},
		"live_status": {"true"},
		"deviceId":    {c.deviceID},
	}, &out)
	return out, err
}

// Channels lists the channel catalog without schedules.
func (c *Client) Channels(ctx context.Context) ([]guide.Channel, error) {
	var out []guide.Channel
	err := c.get(ctx, "/channels", nil, &out)
	return out, err
}

// Categories lists the filter categories.
func (c *Client) Categories(ctx context.Context) ([]guide.Category, error) {
	var out []guide.Category
	err := c.get(ctx, "/categories", nil, &out)
	return out, err
}

// Banners lists the active promotional banners.
func (c *Client) Banners(ctx context.Context) ([]guide.Banner, error) {
	var out []guide.Banner
	err := c.get(ctx, "/banners/active", nil, &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("api: build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-Id", c.deviceID)
	req.Header.Set("X-Platform", "terminal")
	req.Header.Set("X-App-Version", Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api: get %s: unexpected status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}

const deviceIDFile = "device-id"

// deviceID loads the persisted device id, minting one on first run. It lives
// beside the cache namespace so cache invalidation never touches it.
func deviceID(basePath string) (string, error) {
	if basePath == "" {
		return "", fmt.Errorf("api: data path unknown")
	}
	path := filepath.Join(basePath, deviceIDFile)
	if raw, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			return id, nil
		}
	}
	id := uuid.NewString()
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return "", fmt.Errorf("api: ensure data path: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("api: persist device id: %w", err)
	}
	return id, nil
}
