package handlers_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_lms_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_SubmitQuiz(t *testing.T) {
	player := newActor(model.RolePlayer)
	quizID := uuid.New()
	q1, q2 := uuid.New(), uuid.New()
	ansA := uuid.New()
	path := fmt.Sprintf("/api/v1/quizzes/%s/submissions", quizID)

	// q2 は answer_ids が欠落しているので未回答として渡る
	validBody := fmt.Sprintf(`{"answers":[{"question_id":"%s","answer_ids":["%s"]},{"question_id":"%s"}]}`, q1, ansA, q2)
	matchSubs := mock.MatchedBy(func(subs []model.QuestionSubmission) bool {
		return len(subs) == 2 &&
			subs[0].QuestionID == q1 && subs[0].Selection.IsAnswered() && len(subs[0].Selection.IDs()) == 1 &&
			subs[1].QuestionID == q2 && !subs[1].Selection.IsAnswered()
	})
	lockedUntil := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		actor          *model.Actor
		path           string
		body           interface{}
		setupMock      func(ms *mockServices)
		expectedStatus int
		expectedCode   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:  "Success - 合格",
			actor: player,
			path:  path,
			body:  validBody,
			setupMock: func(ms *mockServices) {
				ms.progress.On("SubmitQuiz", mock.Anything, *player, quizID, matchSubs).
					Return(&model.QuizSubmissionResult{Score: 100, Passed: true, Details: []model.QuestionResult{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - 認証ヘッダーなし",
			actor:          nil,
			path:           path,
			body:           validBody,
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "Fail - quiz_id が不正",
			actor:          player,
			path:           "/api/v1/quizzes/not-a-uuid/submissions",
			body:           validBody,
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:           "Fail - 未知のフィールド",
			actor:          player,
			path:           path,
			body:           `{"answers":[],"extra":true}`,
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "Fail - question_id が欠落",
			actor:          player,
			path:           path,
			body:           `{"answers":[{"answer_ids":[]}]}`,
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:  "Fail - 合格済み",
			actor: player,
			path:  path,
			body:  validBody,
			setupMock: func(ms *mockServices) {
				ms.progress.On("SubmitQuiz", mock.Anything, *player, quizID, mock.Anything).
					Return(nil, model.NewAppError("QUIZ_ALREADY_PASSED", "合格済みです。", "", model.ErrAlreadyPassed)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "QUIZ_ALREADY_PASSED",
		},
		{
			name:  "Fail - ロック中は解除時刻を返す",
			actor: player,
			path:  path,
			body:  validBody,
			setupMock: func(ms *mockServices) {
				ms.progress.On("SubmitQuiz", mock.Anything, *player, quizID, mock.Anything).
					Return(nil, model.NewStillLockedAppError(lockedUntil)).Once()
			},
			expectedStatus: http.StatusLocked,
			expectedCode:   "QUIZ_LOCKED",
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"locked_until":"2026-01-02T10:00:00Z"`)
			},
		},
		{
			name:  "Fail - モード不一致",
			actor: player,
			path:  path,
			body:  validBody,
			setupMock: func(ms *mockServices) {
				ms.progress.On("SubmitQuiz", mock.Anything, *player, quizID, mock.Anything).
					Return(nil, model.NewAppError("VALIDATION_MODE_MISMATCH", "モードが違います。", "", model.ErrModeMismatch)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "VALIDATION_MODE_MISMATCH",
		},
		{
			name:  "Fail - 予期せぬエラー",
			actor: player,
			path:  path,
			body:  validBody,
			setupMock: func(ms *mockServices) {
				ms.progress.On("SubmitQuiz", mock.Anything, *player, quizID, mock.Anything).
					Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, ms := newMockRouter(t)
			tc.setupMock(ms)

			rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: tc.path, Body: tc.body, Actor: tc.actor}, tc.expectedStatus)

			if tc.expectedCode != "" {
				verifyErrorResponse(t, rr, tc.expectedCode)
			} else {
				res := decodeBody[model.QuizSubmissionResult](t, rr)
				assert.Equal(t, 100.0, res.Score)
				assert.True(t, res.Passed)
			}
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

func TestProgressHandler_MarkLessonRead(t *testing.T) {
	player := newActor(model.RolePlayer)
	lessonID := uuid.New()
	path := fmt.Sprintf("/api/v1/lessons/%s/read", lessonID)

	t.Run("Success", func(t *testing.T) {
		router, ms := newMockRouter(t)
		completedAt := time.Now().UTC()
		ms.progress.On("MarkLessonRead", mock.Anything, *player, lessonID).
			Return(&model.Progress{PlayerID: player.ID, LessonID: lessonID, Status: model.StatusCompleted, CompletedAt: &completedAt}, nil).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: path, Actor: player}, http.StatusOK)

		progress := decodeBody[model.Progress](t, rr)
		assert.Equal(t, model.StatusCompleted, progress.Status)
		assert.Equal(t, lessonID, progress.LessonID)
	})

	t.Run("Fail - read 以外のレッスン", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("MarkLessonRead", mock.Anything, *player, lessonID).
			Return(nil, model.NewAppError("VALIDATION_MODE_MISMATCH", "モードが違います。", "", model.ErrModeMismatch)).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: path, Actor: player}, http.StatusUnprocessableEntity)
		verifyErrorResponse(t, rr, "VALIDATION_MODE_MISMATCH")
	})

	t.Run("Fail - レッスンが存在しない", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("MarkLessonRead", mock.Anything, *player, lessonID).
			Return(nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "", model.ErrNotFound)).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPost, Path: path, Actor: player}, http.StatusNotFound)
		verifyErrorResponse(t, rr, "LESSON_NOT_FOUND")
	})
}

func TestProgressHandler_ProValidateLesson(t *testing.T) {
	instructor := newActor(model.RoleInstructor)
	lessonID, playerID := uuid.New(), uuid.New()
	path := fmt.Sprintf("/api/v1/lessons/%s/players/%s/validation", lessonID, playerID)

	t.Run("Success - ボディなしはステータス未指定で渡す", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("ProValidateLesson", mock.Anything, *instructor, lessonID, playerID, model.ProgressStatus("")).
			Return(&model.Progress{PlayerID: playerID, LessonID: lessonID, Status: model.StatusCompleted, ValidatedBy: &instructor.ID}, nil).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPut, Path: path, Actor: instructor}, http.StatusOK)

		progress := decodeBody[model.Progress](t, rr)
		assert.Equal(t, model.StatusCompleted, progress.Status)
		require.NotNil(t, progress.ValidatedBy)
		assert.Equal(t, instructor.ID, *progress.ValidatedBy)
	})

	t.Run("Success - 長さ不明の空ボディもボディなしとして扱う", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("ProValidateLesson", mock.Anything, *instructor, lessonID, playerID, model.ProgressStatus("")).
			Return(&model.Progress{PlayerID: playerID, LessonID: lessonID, Status: model.StatusCompleted}, nil).Once()

		req := newRequest(t, httpRequestDetails{Method: http.MethodPut, Path: path, Actor: instructor})
		req.Body = io.NopCloser(strings.NewReader(""))
		req.ContentLength = -1
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "body=%s", rr.Body.String())
		progress := decodeBody[model.Progress](t, rr)
		assert.Equal(t, model.StatusCompleted, progress.Status)
	})

	t.Run("Fail - 壊れたJSON", func(t *testing.T) {
		router, _ := newMockRouter(t)

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPut, Path: path, Body: `{"status":`, Actor: instructor}, http.StatusBadRequest)
		verifyErrorResponse(t, rr, "INVALID_REQUEST_BODY")
	})

	t.Run("Success - ステータス指定", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("ProValidateLesson", mock.Anything, *instructor, lessonID, playerID, model.StatusInProgress).
			Return(&model.Progress{PlayerID: playerID, LessonID: lessonID, Status: model.StatusInProgress}, nil).Once()

		sendRequest(t, router, httpRequestDetails{Method: http.MethodPut, Path: path, Body: model.ProValidateRequest{Status: model.StatusInProgress}, Actor: instructor}, http.StatusOK)
	})

	t.Run("Fail - 不正なステータス", func(t *testing.T) {
		router, _ := newMockRouter(t)

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPut, Path: path, Body: `{"status":"passed"}`, Actor: instructor}, http.StatusBadRequest)
		detail := verifyErrorResponse(t, rr, "VALIDATION_ERROR")
		assert.Equal(t, "status", detail.Field)
	})

	t.Run("Fail - 所有者以外", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("ProValidateLesson", mock.Anything, *instructor, lessonID, playerID, model.ProgressStatus("")).
			Return(nil, model.NewAppError("FORBIDDEN", "権限がありません。", "", model.ErrForbidden)).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodPut, Path: path, Actor: instructor}, http.StatusForbidden)
		verifyErrorResponse(t, rr, "FORBIDDEN")
	})
}

func TestProgressHandler_GetProgress(t *testing.T) {
	player := newActor(model.RolePlayer)
	courseID := uuid.New()
	basePath := fmt.Sprintf("/api/v1/players/%s/progress", player.ID)

	t.Run("Success - course_id で絞り込み", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("GetProgress", mock.Anything, *player, player.ID, &courseID).
			Return([]*model.Progress{{PlayerID: player.ID, Status: model.StatusInProgress}}, nil).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: basePath + "?course_id=" + courseID.String(), Actor: player}, http.StatusOK)

		list := decodeBody[[]model.Progress](t, rr)
		require.Len(t, list, 1)
		assert.Equal(t, model.StatusInProgress, list[0].Status)
	})

	t.Run("Success - 空の場合は空配列", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("GetProgress", mock.Anything, *player, player.ID, (*uuid.UUID)(nil)).Return(nil, nil).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: basePath, Actor: player}, http.StatusOK)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("Fail - course_id が不正", func(t *testing.T) {
		router, _ := newMockRouter(t)

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: basePath + "?course_id=abc", Actor: player}, http.StatusBadRequest)
		detail := verifyErrorResponse(t, rr, "INVALID_QUERY_PARAM")
		assert.Equal(t, "course_id", detail.Field)
	})

	t.Run("Fail - 他人の進捗", func(t *testing.T) {
		router, ms := newMockRouter(t)
		other := uuid.New()
		ms.progress.On("GetProgress", mock.Anything, *player, other, (*uuid.UUID)(nil)).
			Return(nil, model.NewAppError("FORBIDDEN", "権限がありません。", "", model.ErrForbidden)).Once()

		rr := sendRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: fmt.Sprintf("/api/v1/players/%s/progress", other), Actor: player}, http.StatusForbidden)
		verifyErrorResponse(t, rr, "FORBIDDEN")
	})
}
