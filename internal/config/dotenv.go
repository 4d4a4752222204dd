package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultEnv = "local"

// ResolveEnv APP_ENV 결정: OS env > .env.local > .env > "local".
// .env.<env> 파일을 고르기 전에 호출해야 하므로 파일은 읽기만 하고 적용하지 않음
func ResolveEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	for _, f := range []string{".env.local", ".env"} {
		vars, err := godotenv.Read(f)
		if err != nil {
			continue
		}
		if env := vars["APP_ENV"]; env != "" {
			return env
		}
	}
	return defaultEnv
}

// LoadDotEnv loads .env files for env with priority .env.local > .env.<env> > .env.
// Already-set variables are never overwritten, so the OS environment always wins.
// Returns the files actually loaded, highest priority first.
func LoadDotEnv(env string) []string {
	candidates := []string{".env.local"}
	if env != "" && env != "local" {
		candidates = append(candidates, ".env."+env)
	}
	candidates = append(candidates, ".env")

	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
