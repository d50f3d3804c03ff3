package handlers

import (
	"log/slog"
	"net/http"

	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/service"
	"go_lms_progress/internal/webutil"

	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// SubmitQuiz はクイズの回答を採点し、結果を返します
func (h *ProgressHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitQuiz"))

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
	logger = logger.With(slog.String("actor_id", actor.ID.String()), slog.String("quiz_id", quizID.String()))

	var req model.SubmitQuizRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid quiz submission", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SubmitQuiz(r.Context(), actor, quizID, req.ToSubmissions())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz submission graded", slog.Float64("score", result.Score), slog.Bool("passed", result.Passed))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// MarkLessonRead は read モードのレッスンを既読 (完了) にします
func (h *ProgressHandler) MarkLessonRead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MarkLessonRead"))

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

	progress, err := h.service.MarkLessonRead(r.Context(), actor, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// ProValidateLesson は講師がプレイヤーの進捗を設定します。ボディは省略可能です。
func (h *ProgressHandler) ProValidateLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ProValidateLesson"))

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
	playerID, err := webutil.URLParamUUID(r, "player_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ProValidateRequest
	if err := webutil.DecodeOptionalAndValidate(r, &req); err != nil {
		logger.Warn("Invalid validation request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.ProValidateLesson(r.Context(), actor, lessonID, playerID, req.Status)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson validated", slog.String("player_id", playerID.String()), slog.String("status", string(progress.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// GetProgress はプレイヤーの進捗一覧を返します。course_id で絞り込めます。
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	playerID, err := webutil.URLParamUUID(r, "player_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var courseID *uuid.UUID
	if raw := r.URL.Query().Get("course_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "course_idの形式が正しくありません。", "course_id", model.ErrInvalidInput))
			return
		}
		courseID = &id
	}

	progresses, err := h.service.GetProgress(r.Context(), actor, playerID, courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if progresses == nil {
		progresses = []*model.Progress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progresses, logger)
}
