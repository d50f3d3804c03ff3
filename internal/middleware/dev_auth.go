// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_lms_progress/internal/model"
	"go_lms_progress/internal/webutil"

	"github.com/google/uuid"
)

// DevActorMiddleware は開発時用ミドルウェアです。
// X-User-ID / X-User-Role ヘッダーから Actor を組み立ててコンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: invalid or missing X-User-ID", "x_user_id", userIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-IDヘッダーが不正です。", "", model.ErrUnauthenticated))
			return
		}

		role := model.Role(r.Header.Get("X-User-Role"))
		if role == "" {
			role = model.RolePlayer
		}
		if !role.Valid() {
			logger.Warn("[DEV AUTH] Failed: invalid X-User-Role", "x_user_role", string(role))
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-Roleヘッダーが不正です。", "", model.ErrUnauthenticated))
			return
		}

		logger.Debug("[DEV AUTH] Actor set to context (no validation)", "user_id", userID, "role", role)
		ctx := WithActor(r.Context(), model.Actor{ID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
