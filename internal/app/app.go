// Package app はアプリケーションの起動と依存関係のワイヤリングを行う。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/mergington/activities/internal/activity"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/logger"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	return runServe(cfg)
}

// loadSeed はレジストリの初期データを返す。
// SEED_FILEが指定されていればそのJSONファイルを、なければ組み込みシードを使う。
func loadSeed(cfg *config.Config) (map[string]*model.Activity, error) {
	if cfg.SeedFile == "" {
		return repository.DefaultSeed(), nil
	}

	seed, err := repository.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}

	slog.Info("seed file loaded",
		slog.String("path", cfg.SeedFile),
		slog.Int("activities", len(seed)),
	)
	return seed, nil
}

// runServe はAPIサーバーモードで起動する。
// レジストリをシードデータで初期化し、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. レジストリの初期化
	seed, err := loadSeed(cfg)
	if err != nil {
		return err
	}
	repo := repository.NewMemoryActivityRepo(seed)

	slog.Info("activity registry initialized",
		slog.Int("activities", len(seed)),
	)

	// 2. メトリクスの初期化
	promReg := prometheus.NewRegistry()
	collector := metrics.NewCollector(promReg)

	// 3. ドメインサービスの初期化
	activityService := activity.NewService(repo, collector)

	// 4. レートリミッターの初期化
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	rateLimiterCfg.GeneralRate = perMinute(cfg.RateLimitGeneral)
	rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	rateLimiterCfg.SignupRate = perMinute(cfg.RateLimitSignup)
	rateLimiterCfg.SignupBurst = cfg.RateLimitSignup
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	// 5. ルーターの構築
	deps := &handler.RouterDeps{
		Logger:            slog.Default(),
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		ActivityService:   activityService,
		Metrics:           collector,
		Gatherer:          promReg,
	}

	router := handler.NewRouter(deps)

	// 6. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// perMinute はreq/minの設定値をrate.Limit（req/sec）に変換する。
func perMinute(n int) rate.Limit {
	return rate.Limit(float64(n) / 60.0)
}
