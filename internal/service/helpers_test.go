package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを作成します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "lms-progress-test"
	cfg.App.QuizLockout = 24 * time.Hour
	cfg.Database.QueryTimeout = 5 * time.Second
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = time.Hour
	return cfg
}

func testContext() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fixture は進捗テスト用のデータ一式です
type fixture struct {
	instructor model.Actor
	other      model.Actor
	player     model.Actor
	admin      model.Actor

	course     *model.Course
	readLesson *model.Lesson
	proLesson  *model.Lesson
	qcmLesson  *model.Lesson
	quiz       *model.Quiz

	// Q1 の正解は A,B、Q2 の正解は C
	q1, q2           uuid.UUID
	ansA, ansB, ansX uuid.UUID
	ansC, ansD       uuid.UUID
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{
		instructor: model.Actor{ID: uuid.New(), Role: model.RoleInstructor},
		other:      model.Actor{ID: uuid.New(), Role: model.RoleInstructor},
		player:     model.Actor{ID: uuid.New(), Role: model.RolePlayer},
		admin:      model.Actor{ID: uuid.New(), Role: model.RoleAdmin},
		q1:         uuid.New(),
		q2:         uuid.New(),
		ansA:       uuid.New(),
		ansB:       uuid.New(),
		ansX:       uuid.New(),
		ansC:       uuid.New(),
		ansD:       uuid.New(),
	}
	for i, a := range []model.Actor{f.instructor, f.other, f.player, f.admin} {
		require.NoError(t, db.Create(&model.User{
			UserID:       a.ID,
			Name:         fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: "x",
			Role:         a.Role,
		}).Error)
	}

	f.course = &model.Course{CourseID: uuid.New(), OwnerID: f.instructor.ID, Title: "Go入門", Position: 1}
	require.NoError(t, db.Create(f.course).Error)

	newLesson := func(pos int, mode model.ValidationMode) *model.Lesson {
		l := &model.Lesson{LessonID: uuid.New(), CourseID: f.course.CourseID, Position: pos, Title: string(mode), ValidationMode: mode}
		require.NoError(t, db.Create(l).Error)
		return l
	}
	f.readLesson = newLesson(1, model.ValidationModeRead)
	f.proLesson = newLesson(2, model.ValidationModePro)
	f.qcmLesson = newLesson(3, model.ValidationModeQCM)

	f.quiz = &model.Quiz{QuizID: uuid.New(), LessonID: f.qcmLesson.LessonID, Title: "確認テスト", PassingScore: 70}
	require.NoError(t, db.Create(f.quiz).Error)
	questions := []model.Question{
		{QuestionID: f.q1, QuizID: f.quiz.QuizID, Position: 1, Text: "Q1", Answers: []model.Answer{
			{AnswerID: f.ansA, QuestionID: f.q1, Position: 1, Text: "A", IsCorrect: true},
			{AnswerID: f.ansB, QuestionID: f.q1, Position: 2, Text: "B", IsCorrect: true},
			{AnswerID: f.ansX, QuestionID: f.q1, Position: 3, Text: "X"},
		}},
		{QuestionID: f.q2, QuizID: f.quiz.QuizID, Position: 2, Text: "Q2", Answers: []model.Answer{
			{AnswerID: f.ansC, QuestionID: f.q2, Position: 1, Text: "C", IsCorrect: true},
			{AnswerID: f.ansD, QuestionID: f.q2, Position: 2, Text: "D"},
		}},
	}
	for i := range questions {
		require.NoError(t, db.Create(&questions[i]).Error)
	}
	return f
}

// fixedClock はテスト用の時計です
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProgressService(db *gorm.DB, clock *fixedClock) *progressService {
	svc := NewProgressService(
		db,
		repository.NewGormProgressRepository(),
		repository.NewGormLessonRepository(),
		repository.NewGormQuizRepository(),
		repository.NewGormCourseRepository(),
		repository.NewGormUserRepository(),
		testConfig(),
	).(*progressService)
	if clock != nil {
		svc.now = clock.Now
	}
	return svc
}
