package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressFilter は一覧取得の絞り込み条件です。nil の項目は無視されます。
type ProgressFilter struct {
	CourseID *uuid.UUID
	// OwnerID を指定するとそのユーザーが所有するコースのレッスンに限定します
	OwnerID *uuid.UUID
}

//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
type ProgressRepository interface {
	FindByPlayerAndLesson(ctx context.Context, db *gorm.DB, playerID, lessonID uuid.UUID) (*model.Progress, error)
	// Upsert は (player_id, lesson_id) をキーに挿入または columns を更新します。呼び出し後は読み直してください。
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.Progress, columns ...string) error
	// CreateIfAbsent は既に行がある場合 model.ErrConflict を返します
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, progress *model.Progress) error
	// UpdateQuizAttempt は未合格かつロック解除済みの場合に限り受験結果を書き込みます。
	// 条件を満たさない場合 model.ErrConflict を返します。
	UpdateQuizAttempt(ctx context.Context, tx *gorm.DB, progress *model.Progress, now time.Time) error
	ListByPlayer(ctx context.Context, db *gorm.DB, playerID uuid.UUID, filter ProgressFilter) ([]*model.Progress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

var quizAttemptColumns = []string{
	"status", "score", "completed_at", "quiz_locked_until", "passed_at",
	"last_quiz_score", "last_quiz_attempt_at", "last_quiz_details", "updated_at",
}

func (r *gormProgressRepository) FindByPlayerAndLesson(ctx context.Context, db *gorm.DB, playerID, lessonID uuid.UUID) (*model.Progress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.Progress

	result := db.WithContext(ctx).Where("player_id = ? AND lesson_id = ?", playerID, lessonID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress in DB", "error", result.Error, "player_id", playerID.String(), "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByPlayerAndLesson: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.Progress, columns ...string) error {
	logger := middleware.GetLogger(ctx)

	// 挿入用の行は常に新しいIDを持つ。既存行と衝突した場合、既存行の progress_id は変わらない
	row := *progress
	row.ProgressID = uuid.New()

	updates := append(append([]string{}, columns...), "updated_at")
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(&row)
	if result.Error != nil {
		logger.Error("Error upserting progress", "error", result.Error, "player_id", progress.PlayerID.String(), "lesson_id", progress.LessonID.String())
		return fmt.Errorf("gormProgressRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	logger := middleware.GetLogger(ctx)
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(progress)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress", "error", result.Error, "player_id", progress.PlayerID.String())
		return fmt.Errorf("gormProgressRepository.CreateIfAbsent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Progress row already exists", "player_id", progress.PlayerID.String(), "lesson_id", progress.LessonID.String())
		return model.ErrConflict
	}
	return nil
}

func (r *gormProgressRepository) UpdateQuizAttempt(ctx context.Context, tx *gorm.DB, progress *model.Progress, now time.Time) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(progress).
		Where("passed_at IS NULL AND (quiz_locked_until IS NULL OR quiz_locked_until <= ?)", now).
		Select(quizAttemptColumns).
		Updates(progress)
	if result.Error != nil {
		logger.Error("Error updating quiz attempt", "error", result.Error, "progress_id", progress.ProgressID.String())
		return fmt.Errorf("gormProgressRepository.UpdateQuizAttempt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Quiz attempt guard rejected update", "progress_id", progress.ProgressID.String())
		return model.ErrConflict
	}
	return nil
}

func (r *gormProgressRepository) ListByPlayer(ctx context.Context, db *gorm.DB, playerID uuid.UUID, filter ProgressFilter) ([]*model.Progress, error) {
	var progresses []*model.Progress

	query := db.WithContext(ctx).
		Joins("JOIN lessons ON lessons.lesson_id = lesson_progress.lesson_id").
		Where("lesson_progress.player_id = ?", playerID)
	if filter.CourseID != nil {
		query = query.Where("lessons.course_id = ?", *filter.CourseID)
	}
	if filter.OwnerID != nil {
		query = query.Joins("JOIN courses ON courses.course_id = lessons.course_id").
			Where("courses.owner_id = ?", *filter.OwnerID)
	}

	err := query.Order("lessons.course_id ASC, lessons.position ASC").Find(&progresses).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing progress by player", "error", err, "player_id", playerID.String())
		return nil, fmt.Errorf("gormProgressRepository.ListByPlayer: %w", err)
	}
	return progresses, nil
}
