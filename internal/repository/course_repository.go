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

//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
type CourseRepository interface {
	Create(ctx context.Context, db *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	FindByIDs(ctx context.Context, db *gorm.DB, courseIDs []uuid.UUID) ([]*model.Course, error)
	MaxPositionByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) (int, error)
	// SetPositions は courseIDs の順に 1..N を設定し、更新件数を返します
	SetPositions(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) (int64, error)
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Create(course).Error; err != nil {
		logger.Error("Error creating course in DB", "error", err, "owner_id", course.OwnerID.String())
		return fmt.Errorf("gormCourseRepository.Create: %w", err)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course

	result := db.WithContext(ctx).Where("course_id = ?", courseID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by ID in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindByIDs(ctx context.Context, db *gorm.DB, courseIDs []uuid.UUID) ([]*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var courses []*model.Course
	if len(courseIDs) == 0 {
		return courses, nil
	}

	if err := db.WithContext(ctx).Where("course_id IN ?", courseIDs).Find(&courses).Error; err != nil {
		logger.Error("Error finding courses by IDs in DB", "error", err, "count", len(courseIDs))
		return nil, fmt.Errorf("gormCourseRepository.FindByIDs: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) MaxPositionByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) (int, error) {
	var maxPos int
	err := db.WithContext(ctx).Model(&model.Course{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error getting max course position", "error", err, "owner_id", ownerID.String())
		return 0, fmt.Errorf("gormCourseRepository.MaxPositionByOwner: %w", err)
	}
	return maxPos, nil
}

func (r *gormCourseRepository) SetPositions(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) (int64, error) {
	var updated int64
	for i, id := range courseIDs {
		result := tx.WithContext(ctx).Model(&model.Course{}).Where("course_id = ?", id).Update("position", i+1)
		if result.Error != nil {
			middleware.GetLogger(ctx).Error("Error updating course position", "error", result.Error, "course_id", id.String())
			return updated, fmt.Errorf("gormCourseRepository.SetPositions: %w", result.Error)
		}
		updated += result.RowsAffected
	}
	return updated, nil
}
