package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"impromptu/internal/ai"
	"impromptu/internal/ai/gemini"
	"impromptu/internal/blob"
	"impromptu/internal/config"
	"impromptu/internal/dailycache"
	"impromptu/internal/feed"
	"impromptu/internal/handle"
	"impromptu/internal/prompt"
	"impromptu/internal/submission"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("postgres ping: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	repo := submission.NewRepo(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("submissions schema: %v", err)
	}
	promptDB := prompt.NewRepo(pool)
	if err := promptDB.EnsureSchema(ctx); err != nil {
		log.Fatalf("prompts schema: %v", err)
	}

	engines := &ai.Engines{
		Pro:   gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		Flash: gemini.New(cfg.GeminiAPIKey, cfg.GeminiFlashModel),
	}
	judgeEngine, err := engines.Get(cfg.JudgeEngine)
	if err != nil {
		log.Fatalf("JUDGE_ENGINE: %v", err)
	}
	judge := ai.NewJudge(judgeEngine)

	prompts := prompt.NewService(engines.Flash, dailycache.New(cfg.PromptCacheFile))

	blobs := blob.NewDiskStore(cfg.MediaDir, cfg.BaseURL)
	fd := feed.New(repo, rdb)
	pipeline := submission.NewPipeline(blobs, repo, fd)

	h := handle.New(judge, prompts, promptDB, pipeline, repo, fd)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/prompts/today", h.TodaysPrompts)
	mux.HandleFunc("/v1/prompts", h.PromptsByDate)
	mux.HandleFunc("/v1/photos/judge", h.JudgePhoto)
	mux.HandleFunc("/v1/submissions", h.Submit)
	mux.HandleFunc("POST /v1/submissions/{id}/like", h.ToggleLike)
	mux.HandleFunc("/v1/feed", h.Feed)
	mux.HandleFunc("/v1/feed/ws", h.FeedWS)
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDir))))

	addr := ":" + cfg.Port
	log.Printf("impromptu api listening on %s (judge engine %s)", addr, judge.EngineName())
	log.Fatal(http.ListenAndServe(addr, mux))
}
