package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"impromptu/internal/ai"
	"impromptu/internal/dailycache"
	"impromptu/internal/imgutil"
	"impromptu/internal/submission"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func (r *Router) acceptPhoto(msg *tgbotapi.Message) {
	cid := msg.Chat.ID

	promptText, ok := selectedPrompt(cid)
	if !ok {
		r.send(cid, "Pick a prompt first: /prompts")
		return
	}

	// Telegram offers several sizes; take the largest.
	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.send(cid, "Could not fetch your photo, try again.")
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	data, err := download(url)
	if err != nil {
		r.send(cid, "Could not download your photo, try again.")
		return
	}

	r.send(cid, "Got it, judging...")

	ctx := context.Background()
	img := ai.Image{MIME: imgutil.SniffMIME(data), Data: data}
	verdict, alt := r.Judge.JudgeAndDescribe(ctx, promptText, img)

	if !verdict.Matches {
		feedback := verdict.Feedback
		if strings.HasPrefix(feedback, "ERROR:") {
			feedback = "Something went wrong, try again."
		}
		r.send(cid, "Not this time: "+feedback)
		return
	}

	from := msg.From
	userID := fmt.Sprintf("tg:%d", cid)
	username := ""
	if from != nil {
		username = strings.TrimSpace(from.FirstName + " " + from.LastName)
		if username == "" {
			username = from.UserName
		}
	}

	rec, err := r.Pipeline.Submit(ctx, submission.SubmitParams{
		UserID:     userID,
		Username:   username,
		PromptText: promptText,
		PromptDate: dailycache.Today(),
		Photo:      data,
		PhotoMIME:  img.MIME,
		Caption:    msg.Caption,
		IsValid:    verdict.Matches,
		AIFeedback: verdict.Feedback,
		AltText:    alt,
	})
	if err != nil {
		r.send(cid, "Judged a match, but posting failed. Try again.")
		return
	}

	clearSelectedPrompt(cid)
	r.send(cid, fmt.Sprintf("%s\nPosted to today's feed: %s", verdict.Feedback, rec.PhotoURL))
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
