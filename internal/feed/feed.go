// Package feed serves today's accepted submissions, newest first, and
// pushes updates to subscribers. Change fan-out rides on redis pub/sub: the
// submission pipeline publishes on the date's channel, subscribers re-run
// the feed query and hand the fresh list to their callback.
package feed

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"impromptu/internal/submission"
)

const channelPrefix = "feed:"

type Feed struct {
	repo *submission.Repo
	rdb  *redis.Client
}

func New(repo *submission.Repo, rdb *redis.Client) *Feed {
	return &Feed{repo: repo, rdb: rdb}
}

// Fetch returns the full ordered feed for a prompt date.
func (f *Feed) Fetch(ctx context.Context, date string) ([]submission.Submission, error) {
	return f.repo.FeedByDate(ctx, date)
}

// FeedChanged publishes a change notification for the date. Best-effort:
// a failed publish only costs subscribers one refresh.
func (f *Feed) FeedChanged(ctx context.Context, date string) {
	if f.rdb == nil {
		return
	}
	if err := f.rdb.Publish(ctx, channelPrefix+date, "changed").Err(); err != nil {
		log.Printf("feed: publish for %s failed: %v", date, err)
	}
}

// Subscribe delivers the current feed immediately and again after every
// change until the returned unsubscribe func is called or ctx ends.
func (f *Feed) Subscribe(ctx context.Context, date string, onChange func([]submission.Submission)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	initial, err := f.Fetch(ctx, date)
	if err != nil {
		cancel()
		return nil, err
	}
	onChange(initial)

	sub := f.rdb.Subscribe(ctx, channelPrefix+date)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				list, err := f.Fetch(ctx, date)
				if err != nil {
					log.Printf("feed: refresh for %s failed: %v", date, err)
					continue
				}
				onChange(list)
			}
		}
	}()

	return cancel, nil
}
