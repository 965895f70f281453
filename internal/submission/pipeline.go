package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"impromptu/internal/blob"
)

// ErrNotValidated is returned when a caller tries to persist a photo that
// did not pass the judge.
var ErrNotValidated = errors.New("submission: photo was not validated")

// RecordStore is the slice of the repo the pipeline needs.
type RecordStore interface {
	Create(ctx context.Context, s *Submission) (*Submission, error)
}

// Notifier is told when the feed for a date changed. Implementations must
// be best-effort; the pipeline ignores their failures.
type Notifier interface {
	FeedChanged(ctx context.Context, date string)
}

// SubmitParams carries one accepted photo into the pipeline. IsValid must
// already be true: the judge gates persistence, not the pipeline.
type SubmitParams struct {
	UserID     string
	Username   string
	UserAvatar string
	PromptID   string
	PromptText string
	PromptDate string
	Photo      []byte
	PhotoMIME  string
	Caption    string
	IsValid    bool
	AIFeedback string
	AltText    string
}

// Pipeline persists accepted photos: blob upload, URL resolution, then the
// record. A failed upload means no record is ever written; a failed record
// write after upload leaves an orphaned blob and propagates the error.
type Pipeline struct {
	Blobs  blob.Store
	Record RecordStore
	Notify Notifier
}

func NewPipeline(blobs blob.Store, record RecordStore, notify Notifier) *Pipeline {
	return &Pipeline{Blobs: blobs, Record: record, Notify: notify}
}

// Submit runs the three-step persistence flow and returns the stored record.
func (p *Pipeline) Submit(ctx context.Context, params SubmitParams) (*Submission, error) {
	if !params.IsValid {
		return nil, ErrNotValidated
	}
	if len(params.Photo) == 0 {
		return nil, errors.New("submission: empty photo")
	}

	// Collision-resistant name under the user's namespace.
	fileName := fmt.Sprintf("%d_%s.jpg", time.Now().UnixMilli(), shortID())
	path := fmt.Sprintf("submissions/%s/%s", params.UserID, fileName)

	mime := params.PhotoMIME
	if mime == "" {
		mime = "image/jpeg"
	}
	if err := p.Blobs.Put(ctx, path, params.Photo, mime); err != nil {
		return nil, fmt.Errorf("submission: upload photo: %w", err)
	}
	photoURL := p.Blobs.URL(path)

	// Thumbnail is a nice-to-have; the full image carries the feed if it fails.
	thumbURL := ""
	if thumb, err := blob.Thumbnail(params.Photo, blob.ThumbWidth); err == nil {
		thumbPath := strings.TrimSuffix(path, ".jpg") + "_thumb.jpg"
		if err := p.Blobs.Put(ctx, thumbPath, thumb, "image/jpeg"); err == nil {
			thumbURL = p.Blobs.URL(thumbPath)
		} else {
			log.Printf("submission: thumbnail upload failed: %v", err)
		}
	} else {
		log.Printf("submission: thumbnail encode failed: %v", err)
	}

	rec, err := p.Record.Create(ctx, &Submission{
		UserID:     params.UserID,
		Username:   params.Username,
		UserAvatar: params.UserAvatar,
		PromptID:   params.PromptID,
		PromptText: params.PromptText,
		PromptDate: params.PromptDate,
		PhotoURL:   photoURL,
		ThumbURL:   thumbURL,
		Caption:    strings.TrimSpace(params.Caption),
		IsValid:    params.IsValid,
		AIFeedback: params.AIFeedback,
		AltText:    params.AltText,
	})
	if err != nil {
		// The blob is orphaned here; garbage collection is out of scope.
		return nil, err
	}

	if p.Notify != nil {
		p.Notify.FeedChanged(ctx, rec.PromptDate)
	}
	return rec, nil
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
