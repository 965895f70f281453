package handle

import (
	"log"
	"net/http"
	"strings"

	"impromptu/internal/dailycache"
)

type promptsResp struct {
	Date    string   `json:"date"`
	Prompts []string `json:"prompts"`
}

// TodaysPrompts serves the generated-or-cached prompt set for today.
func (h *Handle) TodaysPrompts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	day := dailycache.Today()
	writeJSON(w, http.StatusOK, promptsResp{
		Date:    day,
		Prompts: h.prompts.ForDay(r.Context(), day),
	})
}

// PromptsByDate reads the curated per-day prompt document. Unlike
// TodaysPrompts it never generates; missing dates return an empty list.
func (h *Handle) PromptsByDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	prompts, err := h.promptDB.ForDate(r.Context(), date)
	if err != nil {
		log.Printf("handle: prompts lookup %s: %v", date, err)
		writeError(w, http.StatusInternalServerError, "something went wrong, try again")
		return
	}
	writeJSON(w, http.StatusOK, promptsResp{Date: date, Prompts: prompts})
}
