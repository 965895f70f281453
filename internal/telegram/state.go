package telegram

import "sync"

// Per-chat selected prompt. In-memory only; a restart just asks the user
// to pick again.
var selected sync.Map // chatID int64 -> prompt string

func setSelectedPrompt(chatID int64, p string) {
	selected.Store(chatID, p)
}

func selectedPrompt(chatID int64) (string, bool) {
	v, ok := selected.Load(chatID)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func clearSelectedPrompt(chatID int64) {
	selected.Delete(chatID)
}
