package model

import "fmt"

// APIError はAPIが返すエラーを表す。
// DetailはそのままレスポンスボディのdetailフィールドとしてUIに表示される。
type APIError struct {
	Code   string // エラーコード
	Detail string // ユーザー向けメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Detail)
}

// 定義済みエラーコード
const (
	ErrCodeActivityNotFound    = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp     = "ALREADY_SIGNED_UP"
	ErrCodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	ErrCodeInvalidEmail        = "INVALID_EMAIL"
)

// NewActivityNotFoundError は活動未検出エラーを生成する。
func NewActivityNotFoundError() *APIError {
	return &APIError{
		Code:   ErrCodeActivityNotFound,
		Detail: "Activity not found",
	}
}

// NewAlreadySignedUpError は重複登録エラーを生成する。
func NewAlreadySignedUpError() *APIError {
	return &APIError{
		Code:   ErrCodeAlreadySignedUp,
		Detail: "Student already signed up for this activity",
	}
}

// NewParticipantNotFoundError は参加者未検出エラーを生成する。
func NewParticipantNotFoundError() *APIError {
	return &APIError{
		Code:   ErrCodeParticipantNotFound,
		Detail: "Student not found in this activity",
	}
}

// NewInvalidEmailError はメールアドレス未指定エラーを生成する。
// 存在チェックのみ行い、形式の検証はしない。
func NewInvalidEmailError() *APIError {
	return &APIError{
		Code:   ErrCodeInvalidEmail,
		Detail: "Email is required",
	}
}
