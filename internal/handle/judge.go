package handle

import (
	"encoding/json"
	"net/http"
	"strings"

	"impromptu/internal/ai"
	"impromptu/internal/imgutil"
)

type judgeReq struct {
	Prompt string `json:"prompt"`
	// Image is base64, optionally a data: URL.
	Image string `json:"image"`
	MIME  string `json:"mime,omitempty"`
}

type judgeResp struct {
	Matches  bool   `json:"matches"`
	Feedback string `json:"feedback"`
	AltText  string `json:"altText,omitempty"`
}

// JudgePhoto runs the verdict + description pair without persisting
// anything. The client decides what to do with the result.
func (h *Handle) JudgePhoto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req judgeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	data, hint, err := imgutil.DecodeBase64MaybeDataURL(req.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad image: "+err.Error())
		return
	}
	img := ai.Image{MIME: imgutil.PickMIME(req.MIME, hint, data), Data: data}

	verdict, alt := h.judge.JudgeAndDescribe(r.Context(), req.Prompt, img)
	writeJSON(w, http.StatusOK, judgeResp{
		Matches:  verdict.Matches,
		Feedback: verdict.Feedback,
		AltText:  alt,
	})
}
