package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port    string
	BaseURL string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeminiAPIKey     string
	GeminiModel      string
	GeminiFlashModel string
	JudgeEngine      string

	MediaDir        string
	PromptCacheFile string

	TelegramToken string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func Load() *Config {
	port := getEnv("PORT", "8000")
	return &Config{
		Port:    port,
		BaseURL: getEnv("BASE_URL", "http://localhost:"+port),

		DatabaseURL: mustEnv("DATABASE_URL"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		GeminiAPIKey:     mustEnv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		GeminiFlashModel: getEnv("GEMINI_FLASH_MODEL", "gemini-2.5-flash"),
		JudgeEngine:      getEnv("JUDGE_ENGINE", "pro"),

		MediaDir:        getEnv("MEDIA_DIR", "./media"),
		PromptCacheFile: getEnv("PROMPT_CACHE_FILE", "./data/daily_prompts.json"),

		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}
}
