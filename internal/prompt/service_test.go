package prompt

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"impromptu/internal/ai"
	"impromptu/internal/dailycache"
)

type fakeGenerator struct {
	prompts []string
	err     error
	calls   int
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) JudgePhoto(ctx context.Context, promptText string, img ai.Image) (ai.Verdict, error) {
	return ai.Verdict{}, errors.New("not implemented")
}

func (f *fakeGenerator) DescribeImage(ctx context.Context, img ai.Image) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeGenerator) GeneratePrompts(ctx context.Context, date string, n int) ([]string, error) {
	f.calls++
	return f.prompts, f.err
}

func newService(t *testing.T, gen *fakeGenerator) *Service {
	t.Helper()
	slot := dailycache.New(filepath.Join(t.TempDir(), "daily.json"))
	return NewService(gen, slot)
}

func TestForDayGeneratesOncePerDay(t *testing.T) {
	gen := &fakeGenerator{prompts: []string{"Golden hour", "Soft shadow", "A buddy"}}
	s := newService(t, gen)

	first := s.ForDay(context.Background(), "2026-08-31")
	second := s.ForDay(context.Background(), "2026-08-31")

	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if !reflect.DeepEqual(first, gen.prompts) || !reflect.DeepEqual(second, first) {
		t.Errorf("prompts = %v then %v", first, second)
	}
}

func TestForDayRegeneratesOnRollover(t *testing.T) {
	gen := &fakeGenerator{prompts: []string{"Golden hour", "Soft shadow", "A buddy"}}
	s := newService(t, gen)

	s.ForDay(context.Background(), "2026-08-30")
	s.ForDay(context.Background(), "2026-08-31")

	if gen.calls != 2 {
		t.Errorf("generator called %d times across two days, want 2", gen.calls)
	}
}

func TestForDayFallsBackAndCaches(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	s := newService(t, gen)

	first := s.ForDay(context.Background(), "2026-08-31")
	second := s.ForDay(context.Background(), "2026-08-31")

	if len(first) != PerDay {
		t.Fatalf("fallback returned %d prompts, want %d", len(first), PerDay)
	}
	if !reflect.DeepEqual(first, Fallback("2026-08-31", PerDay)) {
		t.Errorf("fallback mismatch: %v", first)
	}
	// The fallback result is cached too; no retry storm within the day.
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if !reflect.DeepEqual(second, first) {
		t.Errorf("cached fallback differs: %v vs %v", second, first)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a := Fallback("2026-08-31", PerDay)
	b := Fallback("2026-08-31", PerDay)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("fallback not deterministic: %v vs %v", a, b)
	}
	next := Fallback("2026-09-01", PerDay)
	if reflect.DeepEqual(a, next) {
		t.Errorf("consecutive days share a fallback set: %v", a)
	}
}
