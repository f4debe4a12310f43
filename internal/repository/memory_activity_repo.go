package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// MemoryActivityRepo はActivityRepositoryのインメモリ実装。
// プロセス起動時にシードデータで初期化され、プロセス終了とともに消える。
// RWMutexで保護されており、並行リクエストから安全に利用できる。
type MemoryActivityRepo struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewMemoryActivityRepo はシードデータで初期化したMemoryActivityRepoを生成する。
// シードの各Activityはコピーして取り込むため、呼び出し側とスライスを共有しない。
func NewMemoryActivityRepo(seed map[string]*model.Activity) *MemoryActivityRepo {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		activities[name] = a.Clone()
	}
	return &MemoryActivityRepo{activities: activities}
}

// List は全活動のスナップショットを返す。
// 各Activityはコピーであり、呼び出し側が変更しても内部状態に影響しない。
func (r *MemoryActivityRepo) List(ctx context.Context) (map[string]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*model.Activity, len(r.activities))
	for name, a := range r.activities {
		snapshot[name] = a.Clone()
	}
	return snapshot, nil
}

// FindByName は指定名の活動のコピーを返す。見つからない場合はnilを返す。
func (r *MemoryActivityRepo) FindByName(ctx context.Context, name string) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

// AddParticipant は指定活動の参加者リスト末尾にメールアドレスを追加する。
// 存在チェックと追加を同一クリティカルセクションで行うため、
// 同時の重複登録は片方が必ずErrDuplicateParticipantになる。
func (r *MemoryActivityRepo) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrDuplicateParticipant
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant は指定活動の参加者リストからメールアドレスを削除する。
// 残りの参加者の順序は保持される。
func (r *MemoryActivityRepo) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrParticipantNotFound
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}
