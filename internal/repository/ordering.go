package repository

import (
	"context"
	"fmt"

	"go_lms_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// positionScope は並び順を持つテーブルと、その並びの範囲 (コースやクイズ) を表します
type positionScope struct {
	model       interface{}
	scopeColumn string
	idColumn    string
}

var (
	lessonPositions   = positionScope{model: &model.Lesson{}, scopeColumn: "course_id", idColumn: "lesson_id"}
	questionPositions = positionScope{model: &model.Question{}, scopeColumn: "quiz_id", idColumn: "question_id"}
)

func (s positionScope) maxPosition(ctx context.Context, db *gorm.DB, scopeID uuid.UUID) (int, error) {
	var maxPos int
	err := db.WithContext(ctx).Model(s.model).
		Where(s.scopeColumn+" = ?", scopeID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos).Error
	return maxPos, err
}

// rewrite は orderedIDs の順に 1..N を振り直します。
// (scope, position) の一意制約に抵触しないよう、いったん既存の値と最終的な値のどちらとも重ならない範囲へ退避してから振り直します。
// orderedIDs はスコープ内の全IDである必要があります。呼び出し側でトランザクションを張ってください。
func (s positionScope) rewrite(ctx context.Context, tx *gorm.DB, scopeID uuid.UUID, orderedIDs []uuid.UUID) error {
	maxPos, err := s.maxPosition(ctx, tx, scopeID)
	if err != nil {
		return fmt.Errorf("max position: %w", err)
	}
	offset := maxPos
	if len(orderedIDs) > offset {
		offset = len(orderedIDs)
	}
	offset++

	// phase 1: 退避
	result := tx.WithContext(ctx).Model(s.model).
		Where(s.scopeColumn+" = ?", scopeID).
		Update("position", gorm.Expr("position + ?", offset))
	if result.Error != nil {
		return fmt.Errorf("phase 1: %w", result.Error)
	}
	if result.RowsAffected != int64(len(orderedIDs)) {
		return fmt.Errorf("phase 1: expected %d rows, got %d: %w", len(orderedIDs), result.RowsAffected, model.ErrConflict)
	}

	// phase 2: 1..N
	for i, id := range orderedIDs {
		result := tx.WithContext(ctx).Model(s.model).
			Where(s.idColumn+" = ? AND "+s.scopeColumn+" = ?", id, scopeID).
			Update("position", i+1)
		if result.Error != nil {
			return fmt.Errorf("phase 2: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("phase 2: %s %s: %w", s.idColumn, id, model.ErrNotFound)
		}
	}
	return nil
}
