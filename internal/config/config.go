// Package config は環境変数ベースのアプリケーション設定を提供する。
package config

import (
	"os"
	"strconv"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort string
	BaseURL    string

	// Seed
	SeedFile string

	// Rate Limit
	RateLimitGeneral int
	RateLimitSignup  int

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// すべての項目にデフォルト値があり、未設定でも起動できる。
// SEED_FILEが指定された場合、組み込みシードの代わりにそのJSONファイルを使う
// （読み込みはアプリケーション起動時に行われる）。
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnvString("SERVER_PORT", "8080"),
		BaseURL:           getEnvString("BASE_URL", "http://localhost:8080"),
		SeedFile:          os.Getenv("SEED_FILE"),
		RateLimitGeneral:  getEnvInt("RATE_LIMIT_GENERAL", 120),
		RateLimitSignup:   getEnvInt("RATE_LIMIT_SIGNUP", 30),
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
