// Package live maintains the long-lived server-sent-event subscription that
// turns backend pushes into cache invalidation and refresh callbacks.
package live

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// ReconnectDelay is the fixed backoff between connection attempts. A downed
// server gets one attempt every five seconds, never a hot loop.
const ReconnectDelay = 5 * time.Second

// refreshEvents is the allow-list of event types that justify a refresh.
// Anything else on the stream is read and dropped.
var refreshEvents = map[string]struct{}{
	"live_status_changed":   {},
	"streamer_went_live":    {},
	"streamer_went_offline": {},
	"live":                  {},
	"schedule_created":      {},
	"schedule_updated":      {},
	"schedule_deleted":      {},
	"channel_updated":       {},
	"program_updated":       {},
}

// Listener holds one auto-reconnecting stream subscription. On a qualifying
// event it calls Invalidate then Refresh, in that order. Safe for concurrent
// use from the UI goroutine and its own read goroutine.
type Listener struct {
	url        string
	invalidate func()
	refresh    func()

	// Delay overrides ReconnectDelay in tests.
	Delay time.Duration

	httpc *http.Client

	mu        sync.Mutex
	active    bool
	suspended bool
	cancel    context.CancelFunc
	reconnect *time.Timer
}

// New builds a listener for the given stream URL. invalidate runs before
// refresh on every qualifying event.
func New(url string, invalidate, refresh func()) *Listener {
	return &Listener{
		url:        url,
		invalidate: invalidate,
		refresh:    refresh,
		Delay:      ReconnectDelay,
		// No client timeout: the stream is meant to stay open.
		httpc: &http.Client{},
	}
}

// Start activates the listener and opens the first connection.
func (l *Listener) Start() {
	l.mu.Lock()
	l.active = true
	l.mu.Unlock()
	l.connect()
}

// Stop tears the listener down: the connection is aborted, any pending
// reconnect is cancelled, and callbacks scheduled before Stop become no-ops.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = false
	l.abortLocked()
}

// Foreground forces a reconnect; the stream may be silently dead after the
// app was backgrounded.
func (l *Listener) Foreground() {
	l.mu.Lock()
	l.suspended = false
	l.mu.Unlock()
	l.connect()
}

// Background proactively aborts the connection and cancels any pending
// reconnect. The listener stays active but suspended, so the read goroutine
// observing the dropped stream cannot arm a new reconnect timer behind us;
// the next Foreground revives it.
func (l *Listener) Background() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.suspended = true
	l.abortLocked()
}

func (l *Listener) abortLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.reconnect != nil {
		l.reconnect.Stop()
		l.reconnect = nil
	}
}

// connect replaces any existing connection and pending reconnect timer with
// a fresh attempt. No-op while the listener is stopped or backgrounded.
func (l *Listener) connect() {
	l.mu.Lock()
	if !l.active || l.suspended {
		l.mu.Unlock()
		return
	}
	l.abortLocked()
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.mu.Unlock()

	go l.read(ctx)
}

func (l *Listener) read(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "live: build request: %v\n", err)
		l.scheduleReconnect()
		return
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := l.httpc.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			l.scheduleReconnect()
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.scheduleReconnect()
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		l.handleLine(scanner.Text())
	}

	// A cancelled context is a deliberate abort (Stop/Background/replace);
	// anything else is the server closing the stream.
	if ctx.Err() == nil {
		l.scheduleReconnect()
	}
}

// handleLine processes one line of the stream. Only well-formed "data:" JSON
// payloads count; heartbeats and partial frames fail to parse and are
// silently skipped.
func (l *Listener) handleLine(line string) {
	if !strings.HasPrefix(line, "data:") {
		return
	}
	payload := strings.TrimSpace(line[len("data:"):])
	if payload == "" {
		return
	}
	var event struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return
	}
	if _, ok := refreshEvents[event.Type]; !ok {
		return
	}

	l.mu.Lock()
	active := l.active
	l.mu.Unlock()
	if !active {
		return
	}
	if l.invalidate != nil {
		l.invalidate()
	}
	if l.refresh != nil {
		l.refresh()
	}
}

func (l *Listener) scheduleReconnect() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active || l.suspended {
		return
	}
	if l.reconnect != nil {
		l.reconnect.Stop()
	}
	l.reconnect = time.AfterFunc(l.Delay, l.connect)
}
