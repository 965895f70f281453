package main

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"impromptu/internal/ai"
	"impromptu/internal/ai/gemini"
	"impromptu/internal/blob"
	"impromptu/internal/config"
	"impromptu/internal/dailycache"
	"impromptu/internal/feed"
	"impromptu/internal/prompt"
	"impromptu/internal/submission"
	"impromptu/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}
	ctx := context.Background()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo := submission.NewRepo(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("submissions schema: %v", err)
	}

	engines := &ai.Engines{
		Pro:   gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		Flash: gemini.New(cfg.GeminiAPIKey, cfg.GeminiFlashModel),
	}
	judgeEngine, err := engines.Get(cfg.JudgeEngine)
	if err != nil {
		log.Fatalf("JUDGE_ENGINE: %v", err)
	}

	fd := feed.New(repo, rdb)
	router := &telegram.Router{
		Bot:      bot,
		Judge:    ai.NewJudge(judgeEngine),
		Prompts:  prompt.NewService(engines.Flash, dailycache.New(cfg.PromptCacheFile)),
		Pipeline: submission.NewPipeline(blob.NewDiskStore(cfg.MediaDir, cfg.BaseURL), repo, fd),
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	log.Printf("impromptu bot running as @%s", bot.Self.UserName)
	for upd := range updates {
		router.HandleUpdate(upd)
	}
}
