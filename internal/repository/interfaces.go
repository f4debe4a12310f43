// Package repository は活動レジストリの永続化インターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/mergington/activities/internal/model"
)

// レジストリ操作の事前条件違反を表すセンチネルエラー。
// サービス層でAPIErrorにマッピングされる。
var (
	// ErrActivityNotFound は指定名の活動がレジストリに存在しないことを示す。
	ErrActivityNotFound = errors.New("activity not found")
	// ErrDuplicateParticipant は同一活動への重複登録を示す。
	ErrDuplicateParticipant = errors.New("participant already signed up")
	// ErrParticipantNotFound は参加者が該当活動に登録されていないことを示す。
	ErrParticipantNotFound = errors.New("participant not found in activity")
)

// ActivityRepository は活動レジストリの操作インターフェース。
// 事前条件チェックと書き込みは実装側で単一のクリティカルセクション内で
// 行われ、同時リクエスト下でも重複登録が混入しないことを保証する。
type ActivityRepository interface {
	// List は全活動のスナップショットを活動名をキーとするマップで返す。
	List(ctx context.Context) (map[string]*model.Activity, error)

	// FindByName は指定名の活動を取得する。見つからない場合はnilを返す。
	FindByName(ctx context.Context, name string) (*model.Activity, error)

	// AddParticipant は指定活動の参加者リスト末尾にメールアドレスを追加する。
	// 活動が存在しない場合はErrActivityNotFound、既に登録済みの場合は
	// ErrDuplicateParticipantを返す。
	AddParticipant(ctx context.Context, name, email string) error

	// RemoveParticipant は指定活動の参加者リストからメールアドレスを削除する。
	// 活動が存在しない場合はErrActivityNotFound、未登録の場合は
	// ErrParticipantNotFoundを返す。
	RemoveParticipant(ctx context.Context, name, email string) error
}
