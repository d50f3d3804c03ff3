package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/handlers"
	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/repository"
	"go_lms_progress/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newIntegrationRouter は実サービスとインメモリDBをつないだルーターを作ります
func newIntegrationRouter(t *testing.T) *chi.Mux {
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

	cfg := &config.Config{}
	cfg.App.Name = "lms-progress-test"
	cfg.App.QuizLockout = 24 * time.Hour
	cfg.Database.QueryTimeout = 5 * time.Second
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = time.Hour
	cfg.Auth.AllowInstructorSignup = true

	userRepo := repository.NewGormUserRepository()
	courseRepo := repository.NewGormCourseRepository()
	lessonRepo := repository.NewGormLessonRepository()
	quizRepo := repository.NewGormQuizRepository()
	progressRepo := repository.NewGormProgressRepository()

	router := chi.NewRouter()
	handlers.Routes{
		Auth:         handlers.NewAuthHandler(service.NewAuthService(db, userRepo, cfg)),
		Course:       handlers.NewCourseHandler(service.NewCourseService(db, courseRepo, lessonRepo, quizRepo, cfg), testLogger),
		Ordering:     handlers.NewOrderingHandler(service.NewOrderingService(db, courseRepo, lessonRepo, quizRepo, cfg), testLogger),
		Progress:     handlers.NewProgressHandler(service.NewProgressService(db, progressRepo, lessonRepo, quizRepo, courseRepo, userRepo, cfg), testLogger),
		Authenticate: middleware.DevActorMiddleware,
	}.Mount(router)
	return router
}

func registerActor(t *testing.T, router http.Handler, name string, role model.Role) *model.Actor {
	t.Helper()
	rr := sendRequest(t, router, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/register",
		Body:   model.RegisterRequest{Name: name, Email: name + "@example.com", Password: "password123", Role: role},
	}, http.StatusCreated)
	user := decodeBody[model.UserResponse](t, rr)
	return &model.Actor{ID: user.UserID, Role: user.Role}
}

// TestAPI_LearningFlow はコース作成から受験・既読・並び替えまでを通しで確認します
func TestAPI_LearningFlow(t *testing.T) {
	router := newIntegrationRouter(t)

	instructor := registerActor(t, router, "instructor", model.RoleInstructor)
	player := registerActor(t, router, "player", "")
	assert.Equal(t, model.RolePlayer, player.Role)

	// --- コースとレッスン ---
	rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/courses", Body: model.CreateCourseRequest{Title: "Go入門"}, Actor: instructor}, http.StatusCreated)
	course := decodeBody[model.Course](t, rr)

	lessonsPath := fmt.Sprintf("/api/v1/courses/%s/lessons", course.CourseID)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: lessonsPath, Body: model.CreateLessonRequest{Title: "読む", ValidationMode: model.ValidationModeRead}, Actor: instructor}, http.StatusCreated)
	readLesson := decodeBody[model.Lesson](t, rr)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: lessonsPath, Body: model.CreateLessonRequest{Title: "解く", ValidationMode: model.ValidationModeQCM}, Actor: instructor}, http.StatusCreated)
	qcmLesson := decodeBody[model.Lesson](t, rr)
	assert.Equal(t, 1, readLesson.Position)
	assert.Equal(t, 2, qcmLesson.Position)

	// --- クイズ ---
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: fmt.Sprintf("/api/v1/lessons/%s/quiz", qcmLesson.LessonID), Body: model.CreateQuizRequest{Title: "確認", PassingScore: 100}, Actor: instructor}, http.StatusCreated)
	quiz := decodeBody[model.Quiz](t, rr)

	rr = sendRequest(t, router, httpRequestDetails{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/quizzes/%s/questions", quiz.QuizID),
		Body: model.CreateQuestionRequest{
			Text:    "正しいものは?",
			Answers: []model.CreateAnswerRequest{{Text: "正解", IsCorrect: true}, {Text: "不正解"}},
		},
		Actor: instructor,
	}, http.StatusCreated)
	question := decodeBody[model.Question](t, rr)
	require.Len(t, question.Answers, 2)
	correctID, wrongID := question.Answers[0].AnswerID, question.Answers[1].AnswerID

	// プレイヤーには正解を見せない
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: fmt.Sprintf("/api/v1/quizzes/%s", quiz.QuizID), Actor: player}, http.StatusOK)
	assert.NotContains(t, rr.Body.String(), "is_correct")

	// --- 不合格でロック、再受験は 423 ---
	submitPath := fmt.Sprintf("/api/v1/quizzes/%s/submissions", quiz.QuizID)
	wrongBody := fmt.Sprintf(`{"answers":[{"question_id":"%s","answer_ids":["%s"]}]}`, question.QuestionID, wrongID)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: submitPath, Body: wrongBody, Actor: player}, http.StatusOK)
	result := decodeBody[model.QuizSubmissionResult](t, rr)
	assert.False(t, result.Passed)
	assert.Equal(t, 0.0, result.Score)
	require.NotNil(t, result.LockedUntil)

	correctBody := fmt.Sprintf(`{"answers":[{"question_id":"%s","answer_ids":["%s"]}]}`, question.QuestionID, correctID)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: submitPath, Body: correctBody, Actor: player}, http.StatusLocked)
	detail := verifyErrorResponse(t, rr, "QUIZ_LOCKED")
	require.NotNil(t, detail.LockedUntil)
	assert.WithinDuration(t, *result.LockedUntil, *detail.LockedUntil, time.Second)

	// --- 既読は冪等 ---
	readPath := fmt.Sprintf("/api/v1/lessons/%s/read", readLesson.LessonID)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: readPath, Actor: player}, http.StatusOK)
	first := decodeBody[model.Progress](t, rr)
	require.NotNil(t, first.CompletedAt)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: readPath, Actor: player}, http.StatusOK)
	second := decodeBody[model.Progress](t, rr)
	require.NotNil(t, second.CompletedAt)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt))

	// qcm レッスンは既読にできない
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: fmt.Sprintf("/api/v1/lessons/%s/read", qcmLesson.LessonID), Actor: player}, http.StatusUnprocessableEntity)
	verifyErrorResponse(t, rr, "")

	// --- 進捗一覧 ---
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: fmt.Sprintf("/api/v1/players/%s/progress?course_id=%s", player.ID, course.CourseID), Actor: instructor}, http.StatusOK)
	progresses := decodeBody[[]model.Progress](t, rr)
	assert.Len(t, progresses, 2)

	// 他のプレイヤーは見られない
	otherPlayer := registerActor(t, router, "other", model.RolePlayer)
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: fmt.Sprintf("/api/v1/players/%s/progress", player.ID), Actor: otherPlayer}, http.StatusForbidden)
	verifyErrorResponse(t, rr, "")

	// --- 部分指定の並び替え ---
	rr = sendRequest(t, router, httpRequestDetails{Method: http.MethodPut, Path: lessonsPath + "/order", Body: model.ReorderRequest{IDs: []uuid.UUID{qcmLesson.LessonID}}, Actor: instructor}, http.StatusOK)
	lessons := decodeBody[[]model.Lesson](t, rr)
	require.Len(t, lessons, 2)
	assert.Equal(t, qcmLesson.LessonID, lessons[0].LessonID)
	assert.Equal(t, 1, lessons[0].Position)
	assert.Equal(t, readLesson.LessonID, lessons[1].LessonID)
	assert.Equal(t, 2, lessons[1].Position)
}
