package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timers. Frames are short, so totals are reset by the loop
// after each presented frame.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Entry is one named total
type Entry struct {
	Name     string
	Duration time.Duration
}

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("drone.Build")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name
func Add(name string, d time.Duration) {
	mu.Lock()
	totals[name] += d
	mu.Unlock()
}

// ResetFrame clears the current totals
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns the current totals sorted by duration, longest first.
// Ties are ordered by name.
func Snapshot() []Entry {
	mu.Lock()
	out := make([]Entry, 0, len(totals))
	for k, v := range totals {
		out = append(out, Entry{Name: k, Duration: v})
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Duration != out[j].Duration {
			return out[i].Duration > out[j].Duration
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Total returns the recorded time for name
func Total(name string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return totals[name]
}

// TopN formats the n longest totals, e.g. "renderer.Render:4.2ms, drone.Build:2.1ms"
func TopN(n int) string {
	list := Snapshot()
	if n < len(list) {
		list = list[:n]
	}
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = e.Name + ":" + FormatMillis(e.Duration)
	}
	return strings.Join(parts, ", ")
}

// FormatMillis renders d in milliseconds with one decimal, dropping a trailing ".0"
func FormatMillis(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
