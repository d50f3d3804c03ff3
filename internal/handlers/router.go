package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes はAPIルーティングに必要なハンドラと認証ミドルウェアです
type Routes struct {
	Auth     *AuthHandler
	Course   *CourseHandler
	Ordering *OrderingHandler
	Progress *ProgressHandler

	// Authenticate は保護されたルートに適用されます (JWT または開発用ヘッダー)
	Authenticate func(http.Handler) http.Handler
}

// Mount は /api/v1 配下のルートを登録します
func (rt Routes) Mount(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", rt.Auth.Register)
		r.Post("/auth/login", rt.Auth.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(rt.Authenticate)

			r.Get("/me", rt.Auth.Me)

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", rt.Course.PostCourse)
				r.Put("/order", rt.Ordering.ReorderCourses)
				r.Post("/{course_id}/lessons", rt.Course.PostLesson)
				r.Put("/{course_id}/lessons/order", rt.Ordering.ReorderLessons)
			})

			r.Route("/lessons/{lesson_id}", func(r chi.Router) {
				r.Get("/quiz", rt.Course.GetLessonQuiz)
				r.Post("/quiz", rt.Course.PostQuiz)
				r.Post("/read", rt.Progress.MarkLessonRead)
				r.Put("/players/{player_id}/validation", rt.Progress.ProValidateLesson)
			})

			r.Route("/quizzes/{quiz_id}", func(r chi.Router) {
				r.Get("/", rt.Course.GetQuiz)
				r.Post("/questions", rt.Course.PostQuestion)
				r.Put("/questions/order", rt.Ordering.ReorderQuizQuestions)
				r.Post("/submissions", rt.Progress.SubmitQuiz)
			})

			r.Get("/players/{player_id}/progress", rt.Progress.GetProgress)
		})
	})
}
