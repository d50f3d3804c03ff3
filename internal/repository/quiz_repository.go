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

//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
type QuizRepository interface {
	Create(ctx context.Context, db *gorm.DB, quiz *model.Quiz) error
	// FindByID は設問と選択肢を並び順で Preload して返します
	FindByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error)
	FindByLessonID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Quiz, error)
	CreateQuestion(ctx context.Context, tx *gorm.DB, question *model.Question) error
	MaxQuestionPosition(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (int, error)
	ListQuestionIDs(ctx context.Context, db *gorm.DB, quizID uuid.UUID) ([]uuid.UUID, error)
	ReorderQuestions(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, orderedIDs []uuid.UUID) error
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func withQuestions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.position ASC") }).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.position ASC") })
}

func (r *gormQuizRepository) Create(ctx context.Context, db *gorm.DB, quiz *model.Quiz) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit("Questions").Create(quiz)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Quiz already exists for lesson", "lesson_id", quiz.LessonID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating quiz in DB", "error", result.Error)
		return fmt.Errorf("gormQuizRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuizRepository) FindByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)
	var quiz model.Quiz

	result := withQuestions(db.WithContext(ctx)).Where("quiz_id = ?", quizID).First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quiz by ID in DB", "error", result.Error, "quiz_id", quizID.String())
		return nil, fmt.Errorf("gormQuizRepository.FindByID: %w", result.Error)
	}
	return &quiz, nil
}

func (r *gormQuizRepository) FindByLessonID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)
	var quiz model.Quiz

	result := withQuestions(db.WithContext(ctx)).Where("lesson_id = ?", lessonID).First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quiz by lesson in DB", "error", result.Error, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormQuizRepository.FindByLessonID: %w", result.Error)
	}
	return &quiz, nil
}

// CreateQuestion は設問と選択肢を同時に作成します
func (r *gormQuizRepository) CreateQuestion(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate question position", "quiz_id", question.QuizID.String(), "position", question.Position)
			return model.ErrConflict
		}
		logger.Error("Error creating question in DB", "error", result.Error)
		return fmt.Errorf("gormQuizRepository.CreateQuestion: %w", result.Error)
	}
	return nil
}

func (r *gormQuizRepository) MaxQuestionPosition(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (int, error) {
	maxPos, err := questionPositions.maxPosition(ctx, db, quizID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error getting max question position", "error", err, "quiz_id", quizID.String())
		return 0, fmt.Errorf("gormQuizRepository.MaxQuestionPosition: %w", err)
	}
	return maxPos, nil
}

func (r *gormQuizRepository) ListQuestionIDs(ctx context.Context, db *gorm.DB, quizID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).Model(&model.Question{}).
		Where("quiz_id = ?", quizID).
		Order("position ASC").
		Pluck("question_id", &ids).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing question IDs", "error", err, "quiz_id", quizID.String())
		return nil, fmt.Errorf("gormQuizRepository.ListQuestionIDs: %w", err)
	}
	return ids, nil
}

func (r *gormQuizRepository) ReorderQuestions(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, orderedIDs []uuid.UUID) error {
	if err := questionPositions.rewrite(ctx, tx, quizID, orderedIDs); err != nil {
		middleware.GetLogger(ctx).Error("Error reordering questions", "error", err, "quiz_id", quizID.String())
		return fmt.Errorf("gormQuizRepository.ReorderQuestions: %w", err)
	}
	return nil
}
