// internal/handlers/main_test.go
package handlers_test

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"go_lms_progress/internal/handlers"
	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/service/mocks"

	"github.com/go-chi/chi/v5"
)

var testLogger *slog.Logger

// TestMain はパッケージ全体のセットアップを行います。テスト中のログは破棄します。
func TestMain(m *testing.M) {
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(testLogger)

	os.Exit(m.Run())
}

// mockServices はハンドラテスト用のサービスモック一式です
type mockServices struct {
	auth     *mocks.AuthService
	course   *mocks.CourseService
	ordering *mocks.OrderingService
	progress *mocks.ProgressService
}

// newMockRouter はサービスモックをつないだルーターを作ります。認証は開発用ヘッダーで行います。
func newMockRouter(t *testing.T) (*chi.Mux, *mockServices) {
	t.Helper()

	ms := &mockServices{
		auth:     mocks.NewAuthService(t),
		course:   mocks.NewCourseService(t),
		ordering: mocks.NewOrderingService(t),
		progress: mocks.NewProgressService(t),
	}

	router := chi.NewRouter()
	handlers.Routes{
		Auth:         handlers.NewAuthHandler(ms.auth),
		Course:       handlers.NewCourseHandler(ms.course, testLogger),
		Ordering:     handlers.NewOrderingHandler(ms.ordering, testLogger),
		Progress:     handlers.NewProgressHandler(ms.progress, testLogger),
		Authenticate: middleware.DevActorMiddleware,
	}.Mount(router)
	return router, ms
}
