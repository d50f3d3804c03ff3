package service

import (
	"context"
	"errors"
	"fmt"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name OrderingService --output ./mocks --outpkg mocks --case=underscore
type OrderingService interface {
	ReorderLessons(ctx context.Context, actor model.Actor, courseID uuid.UUID, ids []uuid.UUID) ([]*model.Lesson, error)
	ReorderQuizQuestions(ctx context.Context, actor model.Actor, quizID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	ReorderCourses(ctx context.Context, actor model.Actor, ids []uuid.UUID) (int64, error)
}

type orderingService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	quizRepo   repository.QuizRepository
	cfg        *config.Config
}

func NewOrderingService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	lessonRepo repository.LessonRepository,
	quizRepo repository.QuizRepository,
	cfg *config.Config,
) OrderingService {
	return &orderingService{
		db:         db,
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		quizRepo:   quizRepo,
		cfg:        cfg,
	}
}

// ReorderLessons は指定順にレッスンを並べ、指定されなかったレッスンは元の相対順のまま末尾に続けます
func (s *orderingService) ReorderLessons(ctx context.Context, actor model.Actor, courseID uuid.UUID, ids []uuid.UUID) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx).With("course_id", courseID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		return nil, toAppError(err, errCourseNotFound, logger, "Failed to find course")
	}
	if !actor.CanManage(course.OwnerID) {
		logger.Warn("Lesson reorder rejected: not course owner")
		return nil, errForbidden
	}

	var lessons []*model.Lesson
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.lessonRepo.ListByCourse(ctx, tx, courseID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to list lessons")
		}
		existing := make([]uuid.UUID, 0, len(current))
		for _, l := range current {
			existing = append(existing, l.LessonID)
		}

		ordered, err := mergeOrder(existing, ids)
		if err != nil {
			logger.Warn("Invalid lesson order", "error", err)
			return invalidPayload("並び順の指定が正しくありません。", "ids")
		}
		if err := s.lessonRepo.Reorder(ctx, tx, courseID, ordered); err != nil {
			return toAppError(err, nil, logger, "Failed to reorder lessons")
		}

		lessons, err = s.lessonRepo.ListByCourse(ctx, tx, courseID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to list lessons after reorder")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lessons reordered", "count", len(lessons))
	return lessons, nil
}

// ReorderQuizQuestions は設問の並びを置き換えます。既存の設問IDをちょうど1回ずつ含む必要があります。
func (s *orderingService) ReorderQuizQuestions(ctx context.Context, actor model.Actor, quizID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if err := s.authorizeQuiz(ctx, actor, quizID); err != nil {
		return nil, err
	}

	var ordered []uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.quizRepo.ListQuestionIDs(ctx, tx, quizID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to list questions")
		}
		if err := checkBijection(existing, ids); err != nil {
			logger.Warn("Invalid question order", "error", err)
			return invalidPayload("設問IDはクイズの全設問をちょうど1回ずつ指定してください。", "ids")
		}
		if err := s.quizRepo.ReorderQuestions(ctx, tx, quizID, ids); err != nil {
			return toAppError(err, nil, logger, "Failed to reorder questions")
		}
		ordered, err = s.quizRepo.ListQuestionIDs(ctx, tx, quizID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to list questions after reorder")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Quiz questions reordered", "count", len(ordered))
	return ordered, nil
}

func (s *orderingService) authorizeQuiz(ctx context.Context, actor model.Actor, quizID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		return toAppError(err, errQuizNotFound, logger, "Failed to find quiz")
	}
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, quiz.LessonID)
	if err != nil {
		return toAppError(err, errLessonNotFound, logger, "Failed to find lesson for quiz")
	}
	if lesson.Course == nil || !actor.CanManage(lesson.Course.OwnerID) {
		logger.Warn("Quiz reorder rejected: not course owner", "quiz_id", quizID)
		return errForbidden
	}
	return nil
}

// ReorderCourses は権限のあるコースのみ指定順に並べ直し、更新件数を返します。
// 権限のないIDや存在しないIDは無視し、対象が1件も残らなければ拒否します。
func (s *orderingService) ReorderCourses(ctx context.Context, actor model.Actor, ids []uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if actor.Role != model.RoleInstructor && !actor.IsAdmin() {
		return 0, errForbidden
	}
	if len(ids) == 0 {
		return 0, invalidPayload("コースIDを1件以上指定してください。", "ids")
	}

	courses, err := s.courseRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return 0, toAppError(err, nil, logger, "Failed to find courses")
	}
	owners := make(map[uuid.UUID]uuid.UUID, len(courses))
	for _, c := range courses {
		owners[c.CourseID] = c.OwnerID
	}

	authorized := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		owner, ok := owners[id]
		if !ok || !actor.CanManage(owner) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		authorized = append(authorized, id)
	}
	if len(authorized) == 0 {
		logger.Warn("Course reorder rejected: no authorized ids", "requested", len(ids))
		return 0, model.NewAppError("FORBIDDEN", "並び替え可能なコースが含まれていません。", "ids", model.ErrForbidden)
	}
	if skipped := len(ids) - len(authorized); skipped > 0 {
		logger.Info("Skipped unauthorized or unknown course ids", "skipped", skipped)
	}

	var updated int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.courseRepo.SetPositions(ctx, tx, authorized)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to update course positions")
		}
		updated = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Courses reordered", "updated_count", updated)
	return updated, nil
}

var (
	errUnknownID   = errors.New("unknown id")
	errDuplicateID = errors.New("duplicate id")
	errMissingID   = errors.New("missing id")
)

// mergeOrder は requested の順に並べ、残りの existing を元の順で後ろに続けます
func mergeOrder(existing, requested []uuid.UUID) ([]uuid.UUID, error) {
	known := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	named := make(map[uuid.UUID]struct{}, len(requested))
	out := make([]uuid.UUID, 0, len(existing))
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownID, id)
		}
		if _, dup := named[id]; dup {
			return nil, fmt.Errorf("%w: %s", errDuplicateID, id)
		}
		named[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range existing {
		if _, ok := named[id]; !ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// checkBijection は requested が existing の並べ替えになっているかを確認します
func checkBijection(existing, requested []uuid.UUID) error {
	if len(existing) != len(requested) {
		return fmt.Errorf("%w: expected %d ids, got %d", errMissingID, len(existing), len(requested))
	}
	merged, err := mergeOrder(existing, requested)
	if err != nil {
		return err
	}
	if len(merged) != len(requested) {
		return errMissingID
	}
	return nil
}
