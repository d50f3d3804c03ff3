package middleware

import (
	"context"
	"net/http"
	"strings"

	"go_lms_progress/internal/config"
	"go_lms_progress/internal/model"
	"go_lms_progress/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、Actor をコンテキストに格納します
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthenticated))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthenticated))
				return
			}

			actor, err := ParseAccessToken(headerParts[1], cfg.JWT.SecretKey)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthenticated))
				return
			}

			ctx := WithActor(r.Context(), actor)
			ctx = WithLogger(ctx, logger.With("actor_id", actor.ID.String(), "actor_role", string(actor.Role)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseAccessToken は HS256 で署名されたトークンを検証し、sub と role から Actor を復元します
func ParseAccessToken(tokenString, secretKey string) (model.Actor, error) {
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Actor{}, err
	}
	if !token.Valid {
		return model.Actor{}, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Actor{}, err
	}
	if !claims.Role.Valid() {
		return model.Actor{}, jwt.ErrTokenInvalidClaims
	}
	return model.Actor{ID: userID, Role: claims.Role}, nil
}

// WithActor は Actor をコンテキストに格納します
func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, model.ActorKey, actor)
}

// GetActorFromContext はハンドラが Actor を取り出すためのヘルパーです。
// サービス層には取り出した Actor を引数で渡します。
func GetActorFromContext(ctx context.Context) (model.Actor, error) {
	actor, ok := ctx.Value(model.ActorKey).(model.Actor)
	if !ok || actor.ID == uuid.Nil {
		return model.Actor{}, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthenticated)
	}
	return actor, nil
}
