// Package policy はレッスンの検証モードごとに、誰が進捗を変更できるかを判定します。
package policy

import (
	"go_lms_progress/internal/model"

	"github.com/google/uuid"
)

// ReadCompletion は既読による完了の可否を判定します。
// read モードのレッスンで、本人の進捗に対してのみ completed を許可します。
func ReadCompletion(mode model.ValidationMode, actor model.Actor, playerID uuid.UUID, requested model.ProgressStatus) (model.ProgressStatus, error) {
	if mode != model.ValidationModeRead {
		return "", model.ErrModeMismatch
	}
	if actor.ID != playerID {
		return "", model.ErrForbidden
	}
	if requested != "" && requested != model.StatusCompleted {
		return "", model.ErrInvalidInput
	}
	return model.StatusCompleted, nil
}

// ProValidation は講師による検証の可否を判定します。
// pro モードのレッスンで、コース所有者の講師または管理者のみ許可します。status 省略時は completed です。
func ProValidation(mode model.ValidationMode, actor model.Actor, courseOwnerID uuid.UUID, requested model.ProgressStatus) (model.ProgressStatus, error) {
	if mode != model.ValidationModePro {
		return "", model.ErrModeMismatch
	}
	if !actor.CanManage(courseOwnerID) {
		return "", model.ErrForbidden
	}
	if requested == "" {
		return model.StatusCompleted, nil
	}
	if !requested.Valid() {
		return "", model.ErrInvalidInput
	}
	return requested, nil
}

// QuizAttempt はクイズ提出の可否を判定します。受験できるのは本人のみで、状態は採点結果から決まります。
func QuizAttempt(mode model.ValidationMode, actor model.Actor) error {
	if mode != model.ValidationModeQCM {
		return model.ErrModeMismatch
	}
	if actor.ID == uuid.Nil || !actor.Role.Valid() {
		return model.ErrForbidden
	}
	return nil
}

// QuizStatus は採点結果から進捗の状態を決めます
func QuizStatus(passed bool) model.ProgressStatus {
	if passed {
		return model.StatusCompleted
	}
	return model.StatusInProgress
}

// ProgressView は進捗の閲覧可否を判定します。
// 本人と管理者は常に可、講師は自分のコースに限り可 (restrictToOwner が true を返す)。
func ProgressView(actor model.Actor, playerID uuid.UUID) (allowed bool, restrictToOwner bool) {
	switch {
	case actor.ID == playerID || actor.IsAdmin():
		return true, false
	case actor.Role == model.RoleInstructor:
		return true, true
	default:
		return false, false
	}
}
