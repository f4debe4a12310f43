// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/model"
)

// ActivityServiceInterface は活動ハンドラーが必要とするサービスインターフェース。
type ActivityServiceInterface interface {
	// List は全活動を活動名をキーとするマップで返す。
	List(ctx context.Context) (map[string]*model.Activity, error)
	// SignUp は指定活動に生徒を登録し、確認メッセージを返す。
	SignUp(ctx context.Context, activityName, email string) (string, error)
	// RemoveParticipant は指定活動から生徒の登録を解除し、確認メッセージを返す。
	RemoveParticipant(ctx context.Context, activityName, email string) (string, error)
}

// ActivityHandler は活動レジストリのHTTPハンドラー。
type ActivityHandler struct {
	service ActivityServiceInterface
}

// NewActivityHandler はActivityHandlerを生成する。
func NewActivityHandler(service ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// messageResponse は操作成功時のレスポンスボディ。
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse はエラーレスポンスボディ。
type detailResponse struct {
	Detail string `json:"detail"`
}

// ListActivities は全活動の一覧を返す。
// GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}

// pathParam はchiのURLパラメータをパーセントデコードして返す。
// リクエストパスが非正規のエスケープ（%26や%2Bなど）を含む場合、
// chiはRawPathのままルーティングしてエンコード済みの値を返すため、
// ここで明示的にデコードする。
func pathParam(r *http.Request, key string) (string, error) {
	return url.PathUnescape(chi.URLParam(r, key))
}

// SignUp は活動への登録を処理する。メールアドレスはクエリパラメータで受け取る。
// POST /activities/{name}/signup?email={email}
func (h *ActivityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		writeDetailResponse(w, http.StatusNotFound, "Activity not found")
		return
	}
	email := r.URL.Query().Get("email")

	message, err := h.service.SignUp(r.Context(), name, email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{Message: message})
}

// RemoveParticipant は活動からの登録解除を処理する。
// DELETE /activities/{name}/participants/{email}
func (h *ActivityHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		writeDetailResponse(w, http.StatusNotFound, "Activity not found")
		return
	}
	email, err := pathParam(r, "email")
	if err != nil {
		writeDetailResponse(w, http.StatusNotFound, "Student not found in this activity")
		return
	}

	message, err := h.service.RemoveParticipant(r.Context(), name, email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{Message: message})
}

// --- ヘルパー関数 ---

// writeDetailResponse はdetailフィールドのみのエラーレスポンスを書き込む。
func writeDetailResponse(w http.ResponseWriter, statusCode int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(detailResponse{Detail: detail})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeDetailResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr.Detail)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeDetailResponse(w, http.StatusInternalServerError, "Internal server error")
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
// 重複登録は元のAPI仕様に合わせて409ではなく400を返す。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeActivityNotFound, model.ErrCodeParticipantNotFound:
		return http.StatusNotFound
	case model.ErrCodeAlreadySignedUp, model.ErrCodeInvalidEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
