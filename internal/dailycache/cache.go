// Package dailycache holds one value per calendar day in a single
// persistent slot, the way the web client keeps its daily prompt set in
// localStorage. A stored entry is only served while its date still equals
// today; anything else, including unreadable files, is a miss.
package dailycache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Today returns the calendar-day key in the local timezone.
func Today() string {
	return time.Now().Format("2006-01-02")
}

type envelope struct {
	Date  string          `json:"date"`
	Value json.RawMessage `json:"value"`
}

// Slot is a single file-backed cache slot.
type Slot struct {
	path string
}

func New(path string) *Slot {
	return &Slot{path: path}
}

// Get loads the cached value into v and reports whether it was valid for
// day. Missing, corrupt, or stale entries are all plain misses.
func (s *Slot) Get(day string, v any) bool {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return false
	}
	if env.Date != day || len(env.Value) == 0 {
		return false
	}
	if err := json.Unmarshal(env.Value, v); err != nil {
		return false
	}
	return true
}

// Put stores v for day, overwriting any previous entry.
func (s *Slot) Put(day string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("dailycache: encode value: %w", err)
	}
	b, err := json.Marshal(envelope{Date: day, Value: raw})
	if err != nil {
		return fmt.Errorf("dailycache: encode entry: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("dailycache: %w", err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("dailycache: %w", err)
	}
	return nil
}
