package service

import (
	"context"
	"errors"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --case=underscore
type CourseService interface {
	CreateCourse(ctx context.Context, actor model.Actor, req *model.CreateCourseRequest) (*model.Course, error)
	CreateLesson(ctx context.Context, actor model.Actor, courseID uuid.UUID, req *model.CreateLessonRequest) (*model.Lesson, error)
	CreateQuiz(ctx context.Context, actor model.Actor, lessonID uuid.UUID, req *model.CreateQuizRequest) (*model.Quiz, error)
	CreateQuestion(ctx context.Context, actor model.Actor, quizID uuid.UUID, req *model.CreateQuestionRequest) (*model.Question, error)
	GetQuiz(ctx context.Context, actor model.Actor, quizID uuid.UUID) (*model.QuizView, error)
	GetLessonQuiz(ctx context.Context, actor model.Actor, lessonID uuid.UUID) (*model.QuizView, error)
}

type courseService struct {
	db         *gorm.DB
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	quizRepo   repository.QuizRepository
	cfg        *config.Config
}

func NewCourseService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	lessonRepo repository.LessonRepository,
	quizRepo repository.QuizRepository,
	cfg *config.Config,
) CourseService {
	return &courseService{
		db:         db,
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		quizRepo:   quizRepo,
		cfg:        cfg,
	}
}

// CreateCourse は講師のコースを末尾に追加します
func (s *courseService) CreateCourse(ctx context.Context, actor model.Actor, req *model.CreateCourseRequest) (*model.Course, error) {
	logger := middleware.GetLogger(ctx).With("actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if actor.Role != model.RoleInstructor && !actor.IsAdmin() {
		return nil, errForbidden
	}

	var created *model.Course
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		maxPos, err := s.courseRepo.MaxPositionByOwner(ctx, tx, actor.ID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to get max course position")
		}
		course := &model.Course{
			CourseID:    uuid.New(),
			OwnerID:     actor.ID,
			Title:       req.Title,
			Description: req.Description,
			Published:   req.Published,
			Position:    maxPos + 1,
		}
		if err := s.courseRepo.Create(ctx, tx, course); err != nil {
			return toAppError(err, nil, logger, "Failed to create course")
		}
		created = course
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Course created", "course_id", created.CourseID, "order", created.Position)
	return created, nil
}

// CreateLesson はレッスンをコースの末尾 (最大の order + 1) に追加します
func (s *courseService) CreateLesson(ctx context.Context, actor model.Actor, courseID uuid.UUID, req *model.CreateLessonRequest) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx).With("course_id", courseID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if !req.ValidationMode.Valid() {
		return nil, invalidPayload("検証方法が正しくありません。", "validation_mode")
	}
	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		return nil, toAppError(err, errCourseNotFound, logger, "Failed to find course")
	}
	if !actor.CanManage(course.OwnerID) {
		return nil, errForbidden
	}

	var created *model.Lesson
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		maxPos, err := s.lessonRepo.MaxPosition(ctx, tx, courseID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to get max lesson position")
		}
		lesson := &model.Lesson{
			LessonID:       uuid.New(),
			CourseID:       courseID,
			Position:       maxPos + 1,
			Title:          req.Title,
			ValidationMode: req.ValidationMode,
		}
		if err := s.lessonRepo.Create(ctx, tx, lesson); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("ORDER_CONFLICT", "同時にレッスンが追加されました。再度お試しください。", "", model.ErrConflict)
			}
			return toAppError(err, nil, logger, "Failed to create lesson")
		}
		created = lesson
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lesson created", "lesson_id", created.LessonID, "order", created.Position)
	return created, nil
}

// CreateQuiz は qcm モードのレッスンにクイズを作成します。1レッスンにつき1つまでです。
func (s *courseService) CreateQuiz(ctx context.Context, actor model.Actor, lessonID uuid.UUID, req *model.CreateQuizRequest) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx).With("lesson_id", lessonID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if req.PassingScore < 0 || req.PassingScore > 100 {
		return nil, invalidPayload("合格点は0から100の範囲で指定してください。", "passing_score")
	}
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, toAppError(err, errLessonNotFound, logger, "Failed to find lesson")
	}
	if lesson.Course == nil || !actor.CanManage(lesson.Course.OwnerID) {
		return nil, errForbidden
	}
	if lesson.ValidationMode != model.ValidationModeQCM {
		return nil, errModeMismatch
	}

	quiz := &model.Quiz{
		QuizID:       uuid.New(),
		LessonID:     lessonID,
		Title:        req.Title,
		PassingScore: req.PassingScore,
	}
	if err := s.quizRepo.Create(ctx, s.db, quiz); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("QUIZ_ALREADY_EXISTS", "このレッスンには既にクイズがあります。", "", model.ErrConflict)
		}
		return nil, toAppError(err, nil, logger, "Failed to create quiz")
	}

	logger.Info("Quiz created", "quiz_id", quiz.QuizID)
	return quiz, nil
}

// CreateQuestion は選択肢付きの設問をクイズの末尾に追加します
func (s *courseService) CreateQuestion(ctx context.Context, actor model.Actor, quizID uuid.UUID, req *model.CreateQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID, "actor_id", actor.ID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if len(req.Answers) == 0 {
		return nil, invalidPayload("選択肢を1つ以上指定してください。", "answers")
	}
	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		return nil, toAppError(err, errQuizNotFound, logger, "Failed to find quiz")
	}
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, quiz.LessonID)
	if err != nil {
		return nil, toAppError(err, errLessonNotFound, logger, "Failed to find lesson for quiz")
	}
	if lesson.Course == nil || !actor.CanManage(lesson.Course.OwnerID) {
		return nil, errForbidden
	}

	var created *model.Question
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		maxPos, err := s.quizRepo.MaxQuestionPosition(ctx, tx, quizID)
		if err != nil {
			return toAppError(err, nil, logger, "Failed to get max question position")
		}
		question := &model.Question{
			QuestionID: uuid.New(),
			QuizID:     quizID,
			Position:   maxPos + 1,
			Text:       req.Text,
			Answers:    make([]model.Answer, 0, len(req.Answers)),
		}
		for i, a := range req.Answers {
			question.Answers = append(question.Answers, model.Answer{
				AnswerID:   uuid.New(),
				QuestionID: question.QuestionID,
				Position:   i + 1,
				Text:       a.Text,
				IsCorrect:  a.IsCorrect,
			})
		}
		if err := s.quizRepo.CreateQuestion(ctx, tx, question); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("ORDER_CONFLICT", "同時に設問が追加されました。再度お試しください。", "", model.ErrConflict)
			}
			return toAppError(err, nil, logger, "Failed to create question")
		}
		created = question
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Question created", "question_id", created.QuestionID, "order", created.Position)
	return created, nil
}

// GetQuiz はクイズを返します。正解はコースを編集できるユーザーにのみ含めます。
func (s *courseService) GetQuiz(ctx context.Context, actor model.Actor, quizID uuid.UUID) (*model.QuizView, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		return nil, toAppError(err, errQuizNotFound, logger, "Failed to find quiz")
	}
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, quiz.LessonID)
	if err != nil {
		return nil, toAppError(err, errLessonNotFound, logger, "Failed to find lesson for quiz")
	}
	canEdit := lesson.Course != nil && actor.CanManage(lesson.Course.OwnerID)

	return newQuizView(quiz, canEdit), nil
}

// GetLessonQuiz はレッスンに紐づくクイズを返します
func (s *courseService) GetLessonQuiz(ctx context.Context, actor model.Actor, lessonID uuid.UUID) (*model.QuizView, error) {
	logger := middleware.GetLogger(ctx).With("lesson_id", lessonID)
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		return nil, toAppError(err, errLessonNotFound, logger, "Failed to find lesson")
	}
	quiz, err := s.quizRepo.FindByLessonID(ctx, s.db, lessonID)
	if err != nil {
		return nil, toAppError(err, errQuizNotFound, logger, "Failed to find quiz for lesson")
	}
	canEdit := lesson.Course != nil && actor.CanManage(lesson.Course.OwnerID)

	return newQuizView(quiz, canEdit), nil
}

func newQuizView(quiz *model.Quiz, withAnswers bool) *model.QuizView {
	view := &model.QuizView{
		QuizID:       quiz.QuizID,
		LessonID:     quiz.LessonID,
		Title:        quiz.Title,
		PassingScore: quiz.PassingScore,
		Questions:    make([]model.QuestionView, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		qv := model.QuestionView{
			QuestionID: q.QuestionID,
			Order:      q.Position,
			Text:       q.Text,
			Answers:    make([]model.AnswerView, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			av := model.AnswerView{AnswerID: a.AnswerID, Text: a.Text}
			if withAnswers {
				isCorrect := a.IsCorrect
				av.IsCorrect = &isCorrect
			}
			qv.Answers = append(qv.Answers, av)
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}
