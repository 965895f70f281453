package handle

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"impromptu/internal/dailycache"
	"impromptu/internal/submission"
)

func feedDate(r *http.Request) string {
	if d := strings.TrimSpace(r.URL.Query().Get("date")); d != "" {
		return d
	}
	return dailycache.Today()
}

// Feed returns the full ordered feed for a date (one-shot variant).
func (h *Handle) Feed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	list, err := h.feed.Fetch(r.Context(), feedDate(r))
	if err != nil {
		log.Printf("handle: feed fetch: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong, try again")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The web client is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedWS streams the feed over a websocket: the full ordered list on
// connect and again after every change, until the client goes away.
func (h *Handle) FeedWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	updates := make(chan []submission.Submission, 4)
	unsubscribe, err := h.feed.Subscribe(r.Context(), feedDate(r), func(list []submission.Submission) {
		select {
		case updates <- list:
		default:
			// Slow consumer; it will catch up on the next change.
		}
	})
	if err != nil {
		log.Printf("handle: feed subscribe: %v", err)
		_ = conn.WriteJSON(errorBody{Error: "something went wrong, try again"})
		return
	}
	defer unsubscribe()

	// Reader goroutine only notices the client closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case list := <-updates:
			if err := conn.WriteJSON(list); err != nil {
				return
			}
		}
	}
}
