package repository

import (
	"context"
	"errors"
	"fmt"

	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
type LessonRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error
	// FindByID はコースを Preload して返します (所有者の判定に使う)
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	ListByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.Lesson, error)
	MaxPosition(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (int, error)
	Reorder(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, orderedIDs []uuid.UUID) error
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(lesson)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate lesson position", "error", result.Error, "course_id", lesson.CourseID.String(), "position", lesson.Position)
			return model.ErrConflict
		}
		logger.Error("Error creating lesson in DB", "error", result.Error)
		return fmt.Errorf("gormLessonRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson

	result := db.WithContext(ctx).Preload("Course").Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson by ID in DB", "error", result.Error, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormLessonRepository.FindByID: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) ListByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.Lesson, error) {
	var lessons []*model.Lesson
	err := db.WithContext(ctx).Where("course_id = ?", courseID).Order("position ASC").Find(&lessons).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing lessons by course", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormLessonRepository.ListByCourse: %w", err)
	}
	return lessons, nil
}

func (r *gormLessonRepository) MaxPosition(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (int, error) {
	maxPos, err := lessonPositions.maxPosition(ctx, db, courseID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error getting max lesson position", "error", err, "course_id", courseID.String())
		return 0, fmt.Errorf("gormLessonRepository.MaxPosition: %w", err)
	}
	return maxPos, nil
}

func (r *gormLessonRepository) Reorder(ctx context.Context, tx *gorm.DB, courseID uuid.UUID, orderedIDs []uuid.UUID) error {
	if err := lessonPositions.rewrite(ctx, tx, courseID, orderedIDs); err != nil {
		middleware.GetLogger(ctx).Error("Error reordering lessons", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormLessonRepository.Reorder: %w", err)
	}
	return nil
}
