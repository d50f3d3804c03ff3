package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"go_lms_progress/internal/middleware"
	"go_lms_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB はテストごとに独立したインメモリDBを作成します
func setupSQLiteDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, Migrate(db))
	return db
}

func testCtx() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role) *model.User {
	t.Helper()
	user := &model.User{UserID: uuid.New(), Name: string(role), Email: uuid.NewString() + "@example.com", PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, ownerID uuid.UUID, position int) *model.Course {
	t.Helper()
	course := &model.Course{CourseID: uuid.New(), OwnerID: ownerID, Title: fmt.Sprintf("course-%d", position), Position: position}
	require.NoError(t, db.Create(course).Error)
	return course
}

// seedLessons はコースに 1..n の順でレッスンを作成します
func seedLessons(t *testing.T, db *gorm.DB, courseID uuid.UUID, modes ...model.ValidationMode) []*model.Lesson {
	t.Helper()
	lessons := make([]*model.Lesson, 0, len(modes))
	for i, mode := range modes {
		lesson := &model.Lesson{LessonID: uuid.New(), CourseID: courseID, Title: fmt.Sprintf("lesson-%d", i+1), ValidationMode: mode, Position: i + 1}
		require.NoError(t, db.Create(lesson).Error)
		lessons = append(lessons, lesson)
	}
	return lessons
}

// lessonOrder はコース内のレッスンIDを並び順で返します
func lessonOrder(t *testing.T, db *gorm.DB, courseID uuid.UUID) []uuid.UUID {
	t.Helper()
	var ids []uuid.UUID
	require.NoError(t, db.Model(&model.Lesson{}).Where("course_id = ?", courseID).Order("position ASC").Pluck("lesson_id", &ids).Error)
	return ids
}
