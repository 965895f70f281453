package ai

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Judge wraps an engine with the fail-closed policy: callers always get a
// verdict, never an error. Synthetic feedback is prefixed with "ERROR:" so
// the UI and tests can tell it apart from genuine judge text.
type Judge struct {
	engine Engine
}

func NewJudge(engine Engine) *Judge {
	return &Judge{engine: engine}
}

func (j *Judge) EngineName() string { return j.engine.Name() }

// Judge evaluates one photo against one prompt. Engine or extraction
// failures come back as a rejection, not an error.
func (j *Judge) Judge(ctx context.Context, promptText string, img Image) Verdict {
	if len(img.Data) == 0 {
		return Verdict{Matches: false, Feedback: "ERROR: No image received."}
	}
	v, err := j.engine.JudgePhoto(ctx, promptText, img)
	if err != nil {
		log.Printf("judge: %s engine failed: %v", j.engine.Name(), err)
		return Verdict{Matches: false, Feedback: fmt.Sprintf("ERROR: %v", err)}
	}
	return v
}

// JudgeAndDescribe runs the match verdict and the accessibility description
// concurrently and waits for both. A describe failure never blocks the
// verdict; it just yields an empty alt text.
func (j *Judge) JudgeAndDescribe(ctx context.Context, promptText string, img Image) (Verdict, string) {
	var (
		wg      sync.WaitGroup
		verdict Verdict
		alt     string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		verdict = j.Judge(ctx, promptText, img)
	}()
	go func() {
		defer wg.Done()
		s, err := j.engine.DescribeImage(ctx, img)
		if err != nil {
			log.Printf("judge: describe failed: %v", err)
			return
		}
		alt = s
	}()
	wg.Wait()

	return verdict, alt
}
