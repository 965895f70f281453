// Package telegram is the second submission surface: users pick one of
// today's prompts and send a photo, the bot judges it and posts accepted
// shots to the shared feed.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"impromptu/internal/ai"
	"impromptu/internal/prompt"
	"impromptu/internal/submission"
)

type Router struct {
	Bot      *tgbotapi.BotAPI
	Judge    *ai.Judge
	Prompts  *prompt.Service
	Pipeline *submission.Pipeline
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil {
		return
	}
	cid := msg.Chat.ID

	if msg.IsCommand() {
		r.handleCommand(msg)
		return
	}
	if len(msg.Photo) > 0 {
		r.acceptPhoto(msg)
		return
	}
	r.send(cid, "Send a photo for today's prompt, or /prompts to see the choices.")
}

func (r *Router) handleCommand(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, "Welcome to Impromptu! /prompts shows today's photo prompts. Pick one with /pick <number>, then send your photo.")
	case "health":
		r.send(cid, "ok")
	case "prompts":
		prompts := r.Prompts.Today(context.Background())
		var b strings.Builder
		b.WriteString("Today's prompts:\n")
		for i, p := range prompts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
		b.WriteString("Pick one with /pick <number>, then send a photo.")
		r.send(cid, b.String())
	case "pick":
		arg := strings.TrimSpace(msg.CommandArguments())
		n, err := strconv.Atoi(arg)
		prompts := r.Prompts.Today(context.Background())
		if err != nil || n < 1 || n > len(prompts) {
			r.send(cid, fmt.Sprintf("Usage: /pick <1-%d>", len(prompts)))
			return
		}
		setSelectedPrompt(cid, prompts[n-1])
		r.send(cid, fmt.Sprintf("Got it: %q. Now send your photo!", prompts[n-1]))
	default:
		r.send(cid, "Unknown command. Try /prompts.")
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("telegram: send to %d failed: %v", chatID, err)
	}
}
