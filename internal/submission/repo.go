package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists submissions in Postgres. The like counter and liker array
// are mutated with single-statement atomic updates; everything else
// assumes a single writer per record.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists submissions (
	id           text primary key,
	user_id      text not null,
	username     text not null default '',
	user_avatar  text not null default '',
	prompt_id    text not null default '',
	prompt_text  text not null,
	prompt_date  text not null,
	photo_url    text not null,
	thumb_url    text not null default '',
	caption      text not null default '',
	is_valid     boolean not null,
	ai_feedback  text not null default '',
	alt_text     text not null default '',
	likes        integer not null default 0,
	liked_by     text[] not null default '{}',
	submitted_at timestamptz not null default now()
)`
	if _, err := r.pool.Exec(ctx, q); err != nil {
		return err
	}
	const idx = `
create index if not exists submissions_feed_idx
	on submissions (prompt_date, is_valid, submitted_at desc)`
	_, err := r.pool.Exec(ctx, idx)
	return err
}

// Create inserts the record with a server-assigned timestamp and returns
// the stored row.
func (r *Repo) Create(ctx context.Context, s *Submission) (*Submission, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	const q = `
insert into submissions (
	id, user_id, username, user_avatar, prompt_id, prompt_text, prompt_date,
	photo_url, thumb_url, caption, is_valid, ai_feedback, alt_text, likes, liked_by
) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,0,'{}')
returning likes, liked_by, submitted_at`
	err := r.pool.QueryRow(ctx, q,
		s.ID, s.UserID, s.Username, s.UserAvatar, s.PromptID, s.PromptText, s.PromptDate,
		s.PhotoURL, s.ThumbURL, s.Caption, s.IsValid, s.AIFeedback, s.AltText,
	).Scan(&s.Likes, &s.LikedBy, &s.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("submission: create: %w", err)
	}
	return s, nil
}

// ToggleLike applies a like or unlike driven by the caller-supplied prior
// state. Each branch additionally checks current membership, so a stale
// currentlyLiked flag becomes a no-op instead of a double count.
func (r *Repo) ToggleLike(ctx context.Context, id, userID string, currentlyLiked bool) error {
	var q string
	if currentlyLiked {
		q = `
update submissions
set likes = greatest(likes - 1, 0), liked_by = array_remove(liked_by, $2)
where id = $1 and $2 = any(liked_by)`
	} else {
		q = `
update submissions
set likes = likes + 1, liked_by = array_append(liked_by, $2)
where id = $1 and not ($2 = any(liked_by))`
	}
	if _, err := r.pool.Exec(ctx, q, id, userID); err != nil {
		return fmt.Errorf("submission: toggle like: %w", err)
	}
	return nil
}

// FeedByDate returns all valid submissions for the prompt date, newest
// first. No pagination; the feed covers a single day.
func (r *Repo) FeedByDate(ctx context.Context, date string) ([]Submission, error) {
	const q = `
select id, user_id, username, user_avatar, prompt_id, prompt_text, prompt_date,
       photo_url, thumb_url, caption, is_valid, ai_feedback, alt_text, likes,
       liked_by, submitted_at
from submissions
where prompt_date = $1 and is_valid
order by submitted_at desc`
	rows, err := r.pool.Query(ctx, q, date)
	if err != nil {
		return nil, fmt.Errorf("submission: feed query: %w", err)
	}
	defer rows.Close()

	out := make([]Submission, 0, 16)
	for rows.Next() {
		var s Submission
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Username, &s.UserAvatar, &s.PromptID, &s.PromptText,
			&s.PromptDate, &s.PhotoURL, &s.ThumbURL, &s.Caption, &s.IsValid,
			&s.AIFeedback, &s.AltText, &s.Likes, &s.LikedBy, &s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("submission: feed scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("submission: feed rows: %w", err)
	}
	return out, nil
}

// Get returns one submission by id.
func (r *Repo) Get(ctx context.Context, id string) (*Submission, error) {
	const q = `
select id, user_id, username, user_avatar, prompt_id, prompt_text, prompt_date,
       photo_url, thumb_url, caption, is_valid, ai_feedback, alt_text, likes,
       liked_by, submitted_at
from submissions where id = $1`
	var s Submission
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.UserID, &s.Username, &s.UserAvatar, &s.PromptID, &s.PromptText,
		&s.PromptDate, &s.PhotoURL, &s.ThumbURL, &s.Caption, &s.IsValid,
		&s.AIFeedback, &s.AltText, &s.Likes, &s.LikedBy, &s.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("submission: get %s: %w", id, err)
	}
	return &s, nil
}
