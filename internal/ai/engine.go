package ai

import (
	"context"
	"errors"
)

// Image is a decoded photo ready to be sent inline to a completion endpoint.
type Image struct {
	MIME string
	Data []byte
}

// Verdict is the judge's decision for one photo/prompt pair.
type Verdict struct {
	Matches  bool   `json:"matches"`
	Feedback string `json:"feedback"`
}

// Engine is one multimodal completion backend. Implementations are
// interchangeable; the judge only depends on this surface.
type Engine interface {
	Name() string
	// JudgePhoto decides whether the image shows the prompt.
	JudgePhoto(ctx context.Context, promptText string, img Image) (Verdict, error)
	// DescribeImage returns a one-sentence plain-language description
	// suitable for alt text.
	DescribeImage(ctx context.Context, img Image) (string, error)
	// GeneratePrompts produces n short creative photo prompts for the date.
	GeneratePrompts(ctx context.Context, date string, n int) ([]string, error)
}

// Engines holds the configured backends: a large general model and a
// lightweight fast one.
type Engines struct {
	Pro   Engine
	Flash Engine
}

func (e *Engines) Get(name string) (Engine, error) {
	switch name {
	case "", "pro":
		return e.Pro, nil
	case "flash":
		return e.Flash, nil
	default:
		return nil, errors.New("unknown engine; use 'pro' or 'flash'")
	}
}
