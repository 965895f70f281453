package submission

import "time"

// Submission is one accepted photo response to a daily prompt. Rejected
// attempts never become rows; IsValid is always true on persisted records.
type Submission struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	UserAvatar  string    `json:"userAvatar"`
	PromptID    string    `json:"promptId"`
	PromptText  string    `json:"promptText"`
	PromptDate  string    `json:"promptDate"`
	PhotoURL    string    `json:"photoUrl"`
	ThumbURL    string    `json:"thumbUrl,omitempty"`
	Caption     string    `json:"caption"`
	IsValid     bool      `json:"isValid"`
	AIFeedback  string    `json:"aiFeedback"`
	AltText     string    `json:"altText"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	SubmittedAt time.Time `json:"submittedAt"`
}
