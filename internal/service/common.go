package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/model"
)

// withStoreTimeout はストア呼び出しの上限時間を設定したコンテキストを返します
func withStoreTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := config.DefaultQueryTimeout
	if cfg != nil && cfg.Database.QueryTimeout > 0 {
		timeout = cfg.Database.QueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// 判定系のエラーをクライアント向けの AppError に変換します
var (
	errLessonNotFound = model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "", model.ErrNotFound)
	errCourseNotFound = model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
	errQuizNotFound   = model.NewAppError("QUIZ_NOT_FOUND", "クイズが見つかりません。", "", model.ErrNotFound)
	errPlayerNotFound = model.NewAppError("PLAYER_NOT_FOUND", "プレイヤーが見つかりません。", "", model.ErrNotFound)
	errForbidden      = model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", model.ErrForbidden)
	errModeMismatch   = model.NewAppError("MODE_MISMATCH", "このレッスンの検証方法ではこの操作はできません。", "", model.ErrModeMismatch)
	errAlreadyPassed  = model.NewAppError("QUIZ_ALREADY_PASSED", "このクイズは既に合格済みです。", "", model.ErrAlreadyPassed)
)

func internalError(err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
}

func invalidPayload(message, field string) *model.AppError {
	return model.NewAppError("INVALID_PAYLOAD", message, field, model.ErrInvalidInput)
}

// toAppError はドメインのエラーを AppError に変換します。AppError はそのまま返します。
// notFound には NotFound の場合に返すエラーを渡します。
func toAppError(err error, notFound *model.AppError, logger *slog.Logger, msg string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var locked *model.StillLockedError
	switch {
	case errors.As(err, &locked):
		return model.NewStillLockedAppError(locked.Until)
	case errors.Is(err, model.ErrAlreadyPassed):
		return errAlreadyPassed
	case errors.Is(err, model.ErrModeMismatch):
		return errModeMismatch
	case errors.Is(err, model.ErrForbidden):
		return errForbidden
	case errors.Is(err, model.ErrNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, model.ErrInvalidInput):
		return invalidPayload("リクエストの内容が正しくありません。", "")
	}
	logger.Error(msg, "error", err)
	return internalError(err)
}
