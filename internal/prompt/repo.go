package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo reads curated per-day prompt documents. This lookup path is
// independent of the local daily cache: a row exists only when someone
// published prompts for that date.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists daily_prompts (
	prompt_date text primary key,
	prompts     text[] not null
)`
	_, err := r.pool.Exec(ctx, q)
	return err
}

// ForDate returns the published prompts for a date, or an empty list when
// none exist.
func (r *Repo) ForDate(ctx context.Context, date string) ([]string, error) {
	const q = `select prompts from daily_prompts where prompt_date = $1`
	var prompts []string
	if err := r.pool.QueryRow(ctx, q, date).Scan(&prompts); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("prompt: lookup %s: %w", date, err)
	}
	return prompts, nil
}

// Publish stores or replaces the prompt set for a date.
func (r *Repo) Publish(ctx context.Context, date string, prompts []string) error {
	const q = `
insert into daily_prompts(prompt_date, prompts)
values ($1, $2)
on conflict (prompt_date)
do update set prompts = excluded.prompts`
	_, err := r.pool.Exec(ctx, q, date, prompts)
	return err
}
