// internal/model/error.go
package model

import (
	"errors"
	"fmt"
	"time"
)

// アプリケーション固有のエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConflict        = errors.New("resource conflict") // 重複エラー用

	// 学習進捗まわり
	ErrModeMismatch  = errors.New("validation mode mismatch")
	ErrAlreadyPassed = errors.New("quiz already passed")
	ErrStillLocked   = errors.New("quiz attempt still locked")
)

// StillLockedError はロック解除時刻を保持します。errors.Is(err, ErrStillLocked) が true になります。
type StillLockedError struct {
	Until time.Time
}

func (e *StillLockedError) Error() string {
	return fmt.Sprintf("quiz attempt still locked until %s", e.Until.Format(time.RFC3339))
}

func (e *StillLockedError) Is(target error) bool {
	return target == ErrStillLocked
}

// ErrorDetail はクライアントに返すエラー情報です
type ErrorDetail struct {
	Code        string     `json:"code"`
	Message     string     `json:"message"`
	Field       string     `json:"field,omitempty"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細と、原因となったエラーを保持します
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

// NewStillLockedAppError はロック解除時刻をレスポンスに含めた AppError を生成します
func NewStillLockedAppError(until time.Time) *AppError {
	appErr := NewAppError("QUIZ_LOCKED", "再受験までお待ちください。", "", &StillLockedError{Until: until})
	appErr.Detail.LockedUntil = &until
	return appErr
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
