// Package prompt serves the daily prompt set: three short creative prompts
// per calendar day, generated once and cached for the rest of the day.
package prompt

import (
	"context"
	"log"

	"impromptu/internal/ai"
	"impromptu/internal/dailycache"
)

// PerDay is the number of prompts offered each day.
const PerDay = 3

// Service resolves today's prompts: cache first, then the generator,
// then the built-in fallback list. Whatever wins is cached for the day so
// repeat calls stay off the network.
type Service struct {
	engine ai.Engine
	cache  *dailycache.Slot
}

func NewService(engine ai.Engine, cache *dailycache.Slot) *Service {
	return &Service{engine: engine, cache: cache}
}

// Today returns the prompt set for the current calendar day.
func (s *Service) Today(ctx context.Context) []string {
	return s.ForDay(ctx, dailycache.Today())
}

// ForDay resolves the prompt set for the given day key.
func (s *Service) ForDay(ctx context.Context, day string) []string {
	var cached []string
	if s.cache.Get(day, &cached) && len(cached) > 0 {
		return cached
	}

	prompts, err := s.engine.GeneratePrompts(ctx, day, PerDay)
	if err != nil || len(prompts) == 0 {
		log.Printf("prompt: generator failed for %s, using fallback: %v", day, err)
		prompts = Fallback(day, PerDay)
	}

	if err := s.cache.Put(day, prompts); err != nil {
		log.Printf("prompt: cache write failed: %v", err)
	}
	return prompts
}
