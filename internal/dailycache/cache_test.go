package dailycache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newSlot(t *testing.T) *Slot {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "daily.json"))
}

func TestPutThenGetSameDay(t *testing.T) {
	s := newSlot(t)
	want := []string{"Golden hour", "Something tiny", "Your hands"}

	if err := s.Put("2026-08-31", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var got []string
	if !s.Get("2026-08-31", &got) {
		t.Fatal("Get: expected a hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}

func TestDayRolloverIsMiss(t *testing.T) {
	s := newSlot(t)
	if err := s.Put("2026-08-30", []string{"Shadow play"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var got []string
	if s.Get("2026-08-31", &got) {
		t.Errorf("stale entry served across day boundary: %v", got)
	}
}

func TestMissingFileIsMiss(t *testing.T) {
	s := newSlot(t)
	var got []string
	if s.Get("2026-08-31", &got) {
		t.Error("hit on missing file")
	}
}

func TestCorruptFileIsMiss(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{garbage"},
		{name: "wrong value type", content: `{"date":"2026-08-31","value":"not a list"}`},
		{name: "empty value", content: `{"date":"2026-08-31"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "daily.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			var got []string
			if New(path).Get("2026-08-31", &got) {
				t.Error("corrupt entry must be a miss")
			}
		})
	}
}

func TestPutOverwrites(t *testing.T) {
	s := newSlot(t)
	if err := s.Put("2026-08-30", []string{"old"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("2026-08-31", []string{"new"}); err != nil {
		t.Fatal(err)
	}
	var got []string
	if !s.Get("2026-08-31", &got) || len(got) != 1 || got[0] != "new" {
		t.Errorf("Get after overwrite = %v", got)
	}
}

func TestTodayShape(t *testing.T) {
	day := Today()
	if len(day) != 10 || day[4] != '-' || day[7] != '-' {
		t.Errorf("Today() = %q, want YYYY-MM-DD", day)
	}
}
