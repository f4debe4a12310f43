package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

// testRateLimiterConfig はテスト用の小さいバーストの設定を返す。
func testRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(1.0 / 60.0),
		GeneralBurst:    3,
		SignupRate:      rate.Limit(1.0 / 60.0),
		SignupBurst:     2,
		CleanupInterval: time.Minute,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestGeneralMiddleware_AllowsWithinBurst はバースト以内のリクエストが通ることを検証する。
func TestGeneralMiddleware_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/activities", nil)
		req.RemoteAddr = "192.0.2.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}
}

// TestGeneralMiddleware_RejectsOverBurst はバースト超過で429とRetry-Afterが返ることを検証する。
func TestGeneralMiddleware_RejectsOverBurst(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(okHandler())

	var lastRec *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/activities", nil)
		req.RemoteAddr = "192.0.2.1:12345"
		lastRec = httptest.NewRecorder()
		handler.ServeHTTP(lastRec, req)
	}

	if lastRec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", lastRec.Code, http.StatusTooManyRequests)
	}
	if lastRec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(lastRec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Detail == "" {
		t.Error("expected non-empty detail in 429 response")
	}
}

// TestGeneralMiddleware_SeparateClientsIndependent はクライアントIPごとに独立した
// リミッターが使われることを検証する。
func TestGeneralMiddleware_SeparateClientsIndependent(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(okHandler())

	// 1つ目のクライアントでバーストを使い切る
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/activities", nil)
		req.RemoteAddr = "192.0.2.1:12345"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	// 別クライアントは影響を受けない
	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.RemoteAddr = "192.0.2.2:54321"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	if n := rl.GeneralLimiterCount(); n != 2 {
		t.Errorf("GeneralLimiterCount = %d, want 2", n)
	}
}

// TestSignupMiddleware_IndependentFromGeneral は登録リミッターがAPI全般リミッターと
// 独立にカウントされることを検証する。
func TestSignupMiddleware_IndependentFromGeneral(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig())
	defer rl.Stop()

	general := rl.GeneralMiddleware()(okHandler())
	signup := rl.SignupMiddleware()(okHandler())

	// 登録バースト(2)を使い切る
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)
		req.RemoteAddr = "192.0.2.1:12345"
		w := httptest.NewRecorder()
		signup.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("signup request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)
	req.RemoteAddr = "192.0.2.1:12345"
	w := httptest.NewRecorder()
	signup.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("signup over burst: status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}

	// API全般はまだ通る
	req = httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.RemoteAddr = "192.0.2.1:12345"
	w = httptest.NewRecorder()
	general.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("general after signup exhaustion: status = %d, want %d", w.Code, http.StatusOK)
	}
}

// TestRateLimiter_CleanupRemovesStaleEntries は期限切れエントリがクリーンアップされることを検証する。
func TestRateLimiter_CleanupRemovesStaleEntries(t *testing.T) {
	cfg := testRateLimiterConfig()
	cfg.CleanupInterval = 10 * time.Millisecond
	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.RemoteAddr = "192.0.2.1:12345"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if n := rl.GeneralLimiterCount(); n != 1 {
		t.Fatalf("GeneralLimiterCount = %d, want 1", n)
	}

	// TTL（CleanupIntervalの2倍）を超えるまで待つ
	deadline := time.Now().Add(time.Second)
	for rl.GeneralLimiterCount() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if n := rl.GeneralLimiterCount(); n != 0 {
		t.Errorf("GeneralLimiterCount = %d, want 0 after cleanup", n)
	}
}

// TestClientIPFromRequest はRemoteAddrからIP部分が取り出されることを検証する。
func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"192.0.2.1:12345", "192.0.2.1"},
		{"[2001:db8::1]:8080", "2001:db8::1"},
		{"no-port", "no-port"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remoteAddr
		if got := clientIPFromRequest(req); got != tt.want {
			t.Errorf("clientIPFromRequest(%q) = %q, want %q", tt.remoteAddr, got, tt.want)
		}
	}
}
