package handle

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"impromptu/internal/ai"
	"impromptu/internal/dailycache"
	"impromptu/internal/imgutil"
	"impromptu/internal/submission"
)

// 10 MB is plenty for a phone photo.
const maxUploadBytes = 10 << 20

type submitResp struct {
	Accepted   bool                   `json:"accepted"`
	Feedback   string                 `json:"feedback"`
	AltText    string                 `json:"altText,omitempty"`
	Submission *submission.Submission `json:"submission,omitempty"`
}

// Submit is the full flow: judge the photo against the prompt and, when it
// matches, persist it to the feed. Rejections come back as 200 with
// accepted=false; only infrastructure failures are errors.
func (h *Handle) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	userID := strings.TrimSpace(r.FormValue("user_id"))
	promptText := strings.TrimSpace(r.FormValue("prompt_text"))
	if userID == "" || promptText == "" {
		writeError(w, http.StatusBadRequest, "user_id and prompt_text are required")
		return
	}
	promptDate := strings.TrimSpace(r.FormValue("prompt_date"))
	if promptDate == "" {
		promptDate = dailycache.Today()
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read photo")
		return
	}
	if len(data) > maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "photo too large")
		return
	}

	mime := header.Header.Get("Content-Type")
	img := ai.Image{MIME: imgutil.PickMIME(mime, "", data), Data: data}

	verdict, alt := h.judge.JudgeAndDescribe(r.Context(), promptText, img)
	if !verdict.Matches {
		writeJSON(w, http.StatusOK, submitResp{
			Accepted: false,
			Feedback: verdict.Feedback,
			AltText:  alt,
		})
		return
	}

	rec, err := h.pipeline.Submit(r.Context(), submission.SubmitParams{
		UserID:     userID,
		Username:   strings.TrimSpace(r.FormValue("username")),
		UserAvatar: strings.TrimSpace(r.FormValue("user_avatar")),
		PromptID:   strings.TrimSpace(r.FormValue("prompt_id")),
		PromptText: promptText,
		PromptDate: promptDate,
		Photo:      data,
		PhotoMIME:  img.MIME,
		Caption:    r.FormValue("caption"),
		IsValid:    verdict.Matches,
		AIFeedback: verdict.Feedback,
		AltText:    alt,
	})
	if err != nil {
		log.Printf("handle: submit failed for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "something went wrong, try again")
		return
	}

	writeJSON(w, http.StatusOK, submitResp{
		Accepted:   true,
		Feedback:   verdict.Feedback,
		AltText:    alt,
		Submission: rec,
	})
}

type likeReq struct {
	UserID string `json:"user_id"`
	// CurrentlyLiked is the caller's view of its own membership; stale
	// values degrade to no-ops in the store.
	CurrentlyLiked bool `json:"currently_liked"`
}

// ToggleLike flips the caller's like on a submission.
func (h *Handle) ToggleLike(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "submission id is required")
		return
	}
	var req likeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.repo.ToggleLike(r.Context(), id, req.UserID, req.CurrentlyLiked); err != nil {
		log.Printf("handle: toggle like %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "something went wrong, try again")
		return
	}

	rec, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "submission not found")
			return
		}
		log.Printf("handle: reload after like %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "something went wrong, try again")
		return
	}
	h.feed.FeedChanged(r.Context(), rec.PromptDate)
	writeJSON(w, http.StatusOK, rec)
}
