package service

import (
	"context"
	"errors"
	"time"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/grading"
	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/policy"
	"go_lms_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
type ProgressService interface {
	SubmitQuiz(ctx context.Context, actor model.Actor, quizID uuid.UUID, subs []model.QuestionSubmission) (*model.QuizSubmissionResult, error)
	MarkLessonRead(ctx context.Context, actor model.Actor, lessonID uuid.UUID) (*model.Progress, error)
	ProValidateLesson(ctx context.Context, actor model.Actor, lessonID, playerID uuid.UUID, status model.ProgressStatus) (*model.Progress, error)
	GetProgress(ctx context.Context, actor model.Actor, playerID uuid.UUID, courseID *uuid.UUID) ([]*model.Progress, error)
}

type progressService struct {
	db         *gorm.DB
	progRepo   repository.ProgressRepository
	lessonRepo repository.LessonRepository
	quizRepo   repository.QuizRepository
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	now        func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	progRepo repository.ProgressRepository,
	lessonRepo repository.LessonRepository,
	quizRepo repository.QuizRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) ProgressService {
	return &progressService{
		db:         db,
		progRepo:   progRepo,
		lessonRepo: lessonRepo,
		quizRepo:   quizRepo,
		courseRepo: courseRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *progressService) lockout() time.Duration {
	if s.cfg != nil && s.cfg.App.QuizLockout > 0 {
		return s.cfg.App.QuizLockout
	}
	return config.DefaultQuizLockout
}

// SubmitQuiz は合格済み、ロック中の順に受験可否を確認してから採点し、結果を保存します。
// 書き込み直前に進捗を読み直し、条件付き更新で合格記録の上書きを防ぎます。
func (s *progressService) SubmitQuiz(ctx context.Context, actor model.Actor, quizID uuid.UUID, subs []model.QuestionSubmission) (*model.QuizSubmissionResult, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID, "player_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	now := s.now().UTC()
	var result *model.QuizSubmissionResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizRepo.FindByID(ctx, tx, quizID)
		if err != nil {
			return toAppError(err, errQuizNotFound, logger, "Failed to find quiz")
		}
		lesson, err := s.lessonRepo.FindByID(ctx, tx, quiz.LessonID)
		if err != nil {
			return toAppError(err, errLessonNotFound, logger, "Failed to find lesson for quiz")
		}
		if err := policy.QuizAttempt(lesson.ValidationMode, actor); err != nil {
			logger.Warn("Quiz attempt rejected by policy", "error", err, "validation_mode", lesson.ValidationMode)
			return toAppError(err, nil, logger, "Quiz attempt policy failed")
		}

		existing, err := s.findProgress(ctx, tx, actor.ID, lesson.LessonID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to find progress")
		}
		if err := existing.CheckQuizAttempt(now); err != nil {
			logger.Info("Quiz attempt rejected", "reason", err.Error())
			return toAppError(err, nil, logger, "Quiz attempt check failed")
		}

		graded := grading.Grade(quiz, subs)
		logger.Debug("Quiz graded", "score", graded.Score, "correct", graded.CorrectCount, "total", graded.Total)

		current, err := s.findProgress(ctx, tx, actor.ID, lesson.LessonID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to re-read progress")
		}
		if err := current.CheckQuizAttempt(now); err != nil {
			logger.Warn("Progress changed during grading", "reason", err.Error())
			return toAppError(err, nil, logger, "Quiz attempt re-check failed")
		}

		progress := current
		if progress == nil {
			progress = model.NewProgress(actor.ID, lesson.LessonID)
		}
		status := policy.QuizStatus(graded.Passed)
		progress.ApplyQuizOutcome(graded.Score, status, graded.Details, now, s.lockout())

		if current == nil {
			err = s.progRepo.CreateIfAbsent(ctx, tx, progress)
		} else {
			err = s.progRepo.UpdateQuizAttempt(ctx, tx, progress, now)
		}
		if err != nil {
			if errors.Is(err, model.ErrConflict) {
				return s.concurrentAttemptError(ctx, tx, actor.ID, lesson.LessonID, now)
			}
			return toAppError(err, nil, logger, "Failed to save quiz attempt")
		}

		result = &model.QuizSubmissionResult{
			Score:       graded.Score,
			Passed:      graded.Passed,
			LockedUntil: progress.QuizLockedUntil,
			Details:     graded.Details,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Quiz submitted", "score", result.Score, "passed", result.Passed)
	return result, nil
}

// concurrentAttemptError は同時提出で書き込みが弾かれた場合に、現在の状態に応じたエラーを返します
func (s *progressService) concurrentAttemptError(ctx context.Context, tx *gorm.DB, playerID, lessonID uuid.UUID, now time.Time) error {
	logger := middleware.GetLogger(ctx)
	latest, err := s.findProgress(ctx, tx, playerID, lessonID)
	if err != nil {
		return toAppError(err, nil, logger, "Failed to read progress after conflict")
	}
	if err := latest.CheckQuizAttempt(now); err != nil {
		return toAppError(err, nil, logger, "Quiz attempt check after conflict failed")
	}
	return model.NewAppError("QUIZ_ATTEMPT_CONFLICT", "同時に別の提出が処理されました。再度お試しください。", "", model.ErrConflict)
}

// findProgress は進捗を取得します。存在しない場合は nil, nil を返します。
func (s *progressService) findProgress(ctx context.Context, db *gorm.DB, playerID, lessonID uuid.UUID) (*model.Progress, error) {
	p, err := s.progRepo.FindByPlayerAndLesson(ctx, db, playerID, lessonID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// MarkLessonRead は read モードのレッスンを本人が完了にします。既に完了済みなら何もせず現在の記録を返します。
func (s *progressService) MarkLessonRead(ctx context.Context, actor model.Actor, lessonID uuid.UUID) (*model.Progress, error) {
	logger := middleware.GetLogger(ctx).With("lesson_id", lessonID, "player_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, toAppError(err, errLessonNotFound, logger, "Failed to find lesson")
	}
	status, err := policy.ReadCompletion(lesson.ValidationMode, actor, actor.ID, "")
	if err != nil {
		logger.Warn("Mark as read rejected by policy", "error", err, "validation_mode", lesson.ValidationMode)
		return nil, toAppError(err, nil, logger, "Read completion policy failed")
	}

	now := s.now().UTC()
	var saved *model.Progress
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.findProgress(ctx, tx, actor.ID, lessonID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to find progress")
		}
		if progress == nil {
			progress = model.NewProgress(actor.ID, lessonID)
		}
		if progress.Status == status {
			logger.Debug("Lesson already completed")
			saved = progress
			return nil
		}
		progress.MarkCompleted(now)

		if err := s.progRepo.Upsert(ctx, tx, progress, "status", "completed_at"); err != nil {
			return toAppError(err, nil, logger, "Failed to upsert progress")
		}
		saved, err = s.progRepo.FindByPlayerAndLesson(ctx, tx, actor.ID, lessonID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to re-read progress")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lesson marked as read", "status", saved.Status)
	return saved, nil
}

// ProValidateLesson はコース所有者の講師または管理者が、pro モードのレッスンの進捗を設定します
func (s *progressService) ProValidateLesson(ctx context.Context, actor model.Actor, lessonID, playerID uuid.UUID, status model.ProgressStatus) (*model.Progress, error) {
	logger := middleware.GetLogger(ctx).With("lesson_id", lessonID, "player_id", playerID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, toAppError(err, errLessonNotFound, logger, "Failed to find lesson")
	}
	if lesson.Course == nil {
		logger.Error("Lesson loaded without course", "course_id", lesson.CourseID)
		return nil, internalError(errors.New("lesson course not loaded"))
	}
	target, err := policy.ProValidation(lesson.ValidationMode, actor, lesson.Course.OwnerID, status)
	if err != nil {
		logger.Warn("Pro validation rejected by policy", "error", err, "validation_mode", lesson.ValidationMode)
		return nil, toAppError(err, nil, logger, "Pro validation policy failed")
	}
	if _, err := s.userRepo.FindByID(ctx, s.db, playerID); err != nil {
		return nil, toAppError(err, errPlayerNotFound, logger, "Failed to find player")
	}

	now := s.now().UTC()
	var saved *model.Progress
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.findProgress(ctx, tx, playerID, lessonID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to find progress")
		}
		if progress == nil {
			progress = model.NewProgress(playerID, lessonID)
		}
		progress.SetStatus(target, actor.ID, now)

		if err := s.progRepo.Upsert(ctx, tx, progress, "status", "completed_at", "validated_by"); err != nil {
			return toAppError(err, nil, logger, "Failed to upsert progress")
		}
		saved, err = s.progRepo.FindByPlayerAndLesson(ctx, tx, playerID, lessonID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to re-read progress")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lesson validated by instructor", "status", saved.Status)
	return saved, nil
}

// GetProgress はプレイヤーの進捗一覧を返します。講師は自分のコースのレッスン分のみ閲覧できます。
func (s *progressService) GetProgress(ctx context.Context, actor model.Actor, playerID uuid.UUID, courseID *uuid.UUID) ([]*model.Progress, error) {
	logger := middleware.GetLogger(ctx).With("player_id", playerID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	allowed, restrictToOwner := policy.ProgressView(actor, playerID)
	if !allowed {
		logger.Warn("Progress view rejected")
		return nil, errForbidden
	}

	filter := repository.ProgressFilter{CourseID: courseID}
	if courseID != nil {
		course, err := s.courseRepo.FindByID(ctx, s.db, *courseID)
		if err != nil {
			return nil, toAppError(err, errCourseNotFound, logger, "Failed to find course")
		}
		if restrictToOwner && !actor.CanManage(course.OwnerID) {
			logger.Warn("Instructor does not own course", "course_id", course.CourseID)
			return nil, errForbidden
		}
	}
	if restrictToOwner {
		filter.OwnerID = &actor.ID
	}

	progresses, err := s.progRepo.ListByPlayer(ctx, s.db, playerID, filter)
	if err != nil {
		return nil, toAppError(err, nil, logger, "Failed to list progress")
	}
	return progresses, nil
}
