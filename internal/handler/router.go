package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/web"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// 活動レジストリ
	ActivityService ActivityServiceInterface

	// メトリクス
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Logging → Recovery → SecurityHeaders → CORS → Metrics
//
// レート制限は/activities以下のAPIルートのみに適用し、
// 静的アセット・ヘルスチェック・メトリクスには適用しない。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}

	activityHandler := NewActivityHandler(deps.ActivityService)

	// ルートは静的なランディングページへリダイレクトする
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	// 埋め込み静的アセット。
	// FileServerFSはindex.htmlへの直接アクセスを"./"へ301で正規化してしまうため、
	// ランディングページだけはServeContentで明示的に配信する。
	r.Get("/static/index.html", func(w http.ResponseWriter, r *http.Request) {
		data, err := web.Assets.ReadFile("static/index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(data))
	})
	r.Handle("/static/*", http.FileServer(http.FS(web.Assets)))

	// ヘルスチェック
	r.Get("/health", NewHealthHandler(deps.ActivityService).ServeHTTP)

	// Prometheusスクレイプ
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	// 活動レジストリAPI
	r.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.ListActivities)

			r.Route("/{name}", func(r chi.Router) {
				// POST /activities/{name}/signup - 登録専用レート制限を追加
				if deps.RateLimiter != nil {
					r.With(deps.RateLimiter.SignupMiddleware()).Post("/signup", activityHandler.SignUp)
				} else {
					r.Post("/signup", activityHandler.SignUp)
				}

				r.Delete("/participants/{email}", activityHandler.RemoveParticipant)
			})
		})
	})

	return r
}
