package handlers

import (
	"log/slog"
	"net/http"

	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/service"
	"go_lms_progress/internal/webutil"
)

type OrderingHandler struct {
	service service.OrderingService
	logger  *slog.Logger
}

func NewOrderingHandler(s service.OrderingService, logger *slog.Logger) *OrderingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderingHandler{
		service: s,
		logger:  logger,
	}
}

func (h *OrderingHandler) ReorderLessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReorderLessons"))

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
	var req model.ReorderRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lessons, err := h.service.ReorderLessons(r.Context(), actor, courseID, req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lessons, logger)
}

func (h *OrderingHandler) ReorderQuizQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReorderQuizQuestions"))

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
	var req model.ReorderRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	ids, err := h.service.ReorderQuizQuestions(r.Context(), actor, quizID, req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"ids": ids}, logger)
}

func (h *OrderingHandler) ReorderCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReorderCourses"))

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.ReorderRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	updated, err := h.service.ReorderCourses(r.Context(), actor, req.IDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Courses reordered", slog.Int64("updated_count", updated))
	webutil.RespondWithJSON(w, http.StatusOK, model.ReorderCoursesResponse{UpdatedCount: updated}, logger)
}
