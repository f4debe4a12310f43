// Package activity は課外活動への登録・解除のドメインロジックを提供する。
package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
)

// Recorder は登録操作のメトリクス記録インターフェース。
// metrics.Collectorを直接参照せず、サービス層が必要とする操作のみを定義する。
type Recorder interface {
	RecordSignupSuccess(activityName string)
	RecordSignupFailure(reason string)
	RecordRemovalSuccess(activityName string)
	RecordRemovalFailure(reason string)
}

// Service は活動レジストリのサービス層。
// 事前条件チェックの結果をAPIErrorに変換し、確認メッセージを組み立てる。
type Service struct {
	repo     repository.ActivityRepository
	recorder Recorder
}

// NewService はServiceの新しいインスタンスを生成する。
// recorderはnilでもよく、その場合メトリクスは記録されない。
func NewService(repo repository.ActivityRepository, recorder Recorder) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
	}
}

// List は全活動を活動名をキーとするマップで返す。
// フィルタリングもページネーションも行わない。
func (s *Service) List(ctx context.Context) (map[string]*model.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// SignUp は指定活動に生徒を登録し、確認メッセージを返す。
// 活動が存在しない場合、または既に登録済みの場合はAPIErrorを返す。
// 定員（max_participants）はチェックしない。
func (s *Service) SignUp(ctx context.Context, activityName, email string) (string, error) {
	if email == "" {
		s.recordSignupFailure("invalid_email")
		return "", model.NewInvalidEmailError()
	}

	err := s.repo.AddParticipant(ctx, activityName, email)
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		s.recordSignupFailure("activity_not_found")
		return "", model.NewActivityNotFoundError()
	case errors.Is(err, repository.ErrDuplicateParticipant):
		s.recordSignupFailure("duplicate")
		return "", model.NewAlreadySignedUpError()
	case err != nil:
		s.recordSignupFailure("internal")
		return "", fmt.Errorf("failed to add participant: %w", err)
	}

	slog.Info("participant signed up",
		slog.String("activity", activityName),
		slog.String("email", email),
	)

	if s.recorder != nil {
		s.recorder.RecordSignupSuccess(activityName)
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// RemoveParticipant は指定活動から生徒の登録を解除し、確認メッセージを返す。
// 活動が存在しない場合、または未登録の場合はAPIErrorを返す。
func (s *Service) RemoveParticipant(ctx context.Context, activityName, email string) (string, error) {
	err := s.repo.RemoveParticipant(ctx, activityName, email)
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		s.recordRemovalFailure("activity_not_found")
		return "", model.NewActivityNotFoundError()
	case errors.Is(err, repository.ErrParticipantNotFound):
		s.recordRemovalFailure("participant_not_found")
		return "", model.NewParticipantNotFoundError()
	case err != nil:
		s.recordRemovalFailure("internal")
		return "", fmt.Errorf("failed to remove participant: %w", err)
	}

	slog.Info("participant removed",
		slog.String("activity", activityName),
		slog.String("email", email),
	)

	if s.recorder != nil {
		s.recorder.RecordRemovalSuccess(activityName)
	}
	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}

func (s *Service) recordSignupFailure(reason string) {
	if s.recorder != nil {
		s.recorder.RecordSignupFailure(reason)
	}
}

func (s *Service) recordRemovalFailure(reason string) {
	if s.recorder != nil {
		s.recorder.RecordRemovalFailure(reason)
	}
}
