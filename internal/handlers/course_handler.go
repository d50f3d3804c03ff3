package handlers

import (
	"log/slog"
	"net/http"

	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/service"
	"go_lms_progress/internal/webutil"
)

type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		service: s,
		logger:  logger,
	}
}

// PostCourse はコースを作成します
func (h *CourseHandler) PostCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCourse"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateCourseRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid course request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), actor, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Course created successfully", slog.String("course_id", course.CourseID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, course, logger)
}

// PostLesson はコースの末尾にレッスンを追加します
func (h *CourseHandler) PostLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLesson"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	courseID, err := webutil.URLParamUUID(r, "course_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateLessonRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid lesson request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), actor, courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, lesson, logger)
}

func (h *CourseHandler) PostQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuiz"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	lessonID, err := webutil.URLParamUUID(r, "lesson_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateQuizRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), actor, lessonID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, quiz, logger)
}

func (h *CourseHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuestion"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	quizID, err := webutil.URLParamUUID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateQuestionRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), actor, quizID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}

// GetQuiz はクイズを返します。正解は編集権限がある場合のみ含まれます。
func (h *CourseHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuiz"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	quizID, err := webutil.URLParamUUID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.GetQuiz(r.Context(), actor, quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// GetLessonQuiz はレッスンのクイズを返します
func (h *CourseHandler) GetLessonQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessonQuiz"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	lessonID, err := webutil.URLParamUUID(r, "lesson_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.GetLessonQuiz(r.Context(), actor, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}
