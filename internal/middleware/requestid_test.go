package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestRequestIDMiddleware_GeneratesID はリクエストIDが採番され、
// コンテキストとレスポンスヘッダーの両方に設定されることを検証する。
func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var ctxID string
	handler := NewRequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if ctxID == "" {
		t.Error("expected non-empty request ID in context")
	}
	if headerID := w.Header().Get("X-Request-ID"); headerID != ctxID {
		t.Errorf("X-Request-ID header = %q, want %q", headerID, ctxID)
	}
}

// TestRequestIDMiddleware_PropagatesClientID はクライアント指定のIDが引き継がれることを検証する。
func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	var ctxID string
	handler := NewRequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if ctxID != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied-id", ctxID)
	}
}

// TestRequestIDFromContext_Unset は未設定のコンテキストで空文字が返ることを検証する。
func TestRequestIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("request ID = %q, want empty", id)
	}
}
