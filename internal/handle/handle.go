package handle

import (
	"encoding/json"
	"net/http"

	"impromptu/internal/ai"
	"impromptu/internal/feed"
	"impromptu/internal/prompt"
	"impromptu/internal/submission"
)

type Handle struct {
	judge    *ai.Judge
	prompts  *prompt.Service
	promptDB *prompt.Repo
	pipeline *submission.Pipeline
	repo     *submission.Repo
	feed     *feed.Feed
}

func New(judge *ai.Judge, prompts *prompt.Service, promptDB *prompt.Repo, pipeline *submission.Pipeline, repo *submission.Repo, fd *feed.Feed) *Handle {
	return &Handle{
		judge:    judge,
		prompts:  prompts,
		promptDB: promptDB,
		pipeline: pipeline,
		repo:     repo,
		feed:     fd,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError hides internals from end users; details stay in the server log.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorBody{Error: msg})
}
