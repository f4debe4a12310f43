// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey はコンテキストキーの衝突を避けるための専用型。
type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDFromContext はコンテキストからリクエストIDを取得する。
// 未設定の場合は空文字を返す。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// NewRequestIDMiddleware はリクエストごとにUUIDを採番し、
// コンテキストとX-Request-IDレスポンスヘッダーに設定するミドルウェアを返す。
// クライアントがX-Request-IDヘッダーを送ってきた場合はその値を引き継ぐ。
func NewRequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
