package handler

import (
	"encoding/json"
	"net/http"
)

// healthResponse はヘルスチェックのレスポンスボディ。
type healthResponse struct {
	Status     string `json:"status"`
	Activities int    `json:"activities"`
}

// HealthHandler は稼働確認のHTTPハンドラー。
// レジストリから活動一覧が取得できることを確認し、活動数を返す。
type HealthHandler struct {
	service ActivityServiceInterface
}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler(service ActivityServiceInterface) *HealthHandler {
	return &HealthHandler{service: service}
}

// ServeHTTP はヘルスチェックを処理する。
// GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.List(r.Context())
	if err != nil {
		writeDetailResponse(w, http.StatusServiceUnavailable, "Registry unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(healthResponse{
		Status:     "ok",
		Activities: len(activities),
	})
}
