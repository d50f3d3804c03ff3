package service

import (
	"errors"
	"testing"
	"time"

	"go_lms_progress/internal/model"
	"go_lms_progress/internal/repository"
	"go_lms_progress/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireAppErrorIs(t *testing.T, err error, target error) *model.AppError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, target)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func Test_progressService_SubmitQuiz_Lifecycle(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)
	clock := &fixedClock{t: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	svc := newTestProgressService(db, clock)

	// 1. Q1 正解、Q2 未回答 → 50点で不合格、24時間ロック
	res, err := svc.SubmitQuiz(ctx, f.player, f.quiz.QuizID, []model.QuestionSubmission{
		{QuestionID: f.q1, Selection: model.Answered(f.ansA, f.ansB)},
		{QuestionID: f.q2, Selection: model.Unanswered()},
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Score)
	assert.False(t, res.Passed)
	require.NotNil(t, res.LockedUntil)
	firstLock := clock.Now().Add(24 * time.Hour)
	assert.True(t, res.LockedUntil.Equal(firstLock))
	require.Len(t, res.Details, 2)

	stored, err := repository.NewGormProgressRepository().FindByPlayerAndLesson(ctx, db, f.player.ID, f.qcmLesson.LessonID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, stored.Status)
	require.NotNil(t, stored.LastQuizScore)
	assert.Equal(t, 50.0, *stored.LastQuizScore)
	assert.Nil(t, stored.PassedAt)
	assert.Len(t, stored.LastQuizDetails, 2)

	// 2. 1時間後の再提出はロック中 (解除時刻は変わらない)
	clock.Advance(time.Hour)
	_, err = svc.SubmitQuiz(ctx, f.player, f.quiz.QuizID, []model.QuestionSubmission{
		{QuestionID: f.q1, Selection: model.Answered(f.ansA, f.ansB)},
		{QuestionID: f.q2, Selection: model.Answered(f.ansC)},
	})
	appErr := requireAppErrorIs(t, err, model.ErrStillLocked)
	require.NotNil(t, appErr.Detail.LockedUntil)
	assert.True(t, appErr.Detail.LockedUntil.Equal(firstLock))

	afterLocked, err := repository.NewGormProgressRepository().FindByPlayerAndLesson(ctx, db, f.player.ID, f.qcmLesson.LessonID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, *afterLocked.LastQuizScore)
	assert.True(t, afterLocked.QuizLockedUntil.Equal(firstLock))

	// 3. 25時間後、全問正解で合格
	clock.Advance(24 * time.Hour)
	res, err = svc.SubmitQuiz(ctx, f.player, f.quiz.QuizID, []model.QuestionSubmission{
		{QuestionID: f.q2, Selection: model.Answered(f.ansC)},
		{QuestionID: f.q1, Selection: model.Answered(f.ansB, f.ansA, f.ansA)},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Score)
	assert.True(t, res.Passed)
	assert.Nil(t, res.LockedUntil)

	passed, err := repository.NewGormProgressRepository().FindByPlayerAndLesson(ctx, db, f.player.ID, f.qcmLesson.LessonID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, passed.Status)
	require.NotNil(t, passed.PassedAt)
	assert.True(t, passed.PassedAt.Equal(clock.Now()))
	assert.Nil(t, passed.QuizLockedUntil)

	// 4. 合格後の提出は拒否され、状態は変わらない
	clock.Advance(48 * time.Hour)
	_, err = svc.SubmitQuiz(ctx, f.player, f.quiz.QuizID, nil)
	requireAppErrorIs(t, err, model.ErrAlreadyPassed)

	final, err := repository.NewGormProgressRepository().FindByPlayerAndLesson(ctx, db, f.player.ID, f.qcmLesson.LessonID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, *final.LastQuizScore)
	assert.True(t, final.PassedAt.Equal(*passed.PassedAt))
}

// 合格点ちょうどの得点は合格となり、検証ポリシーが決めた completed が保存される
func Test_progressService_SubmitQuiz_PassAtThreshold(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)
	require.NoError(t, db.Model(&model.Quiz{}).Where("quiz_id = ?", f.quiz.QuizID).Update("passing_score", 50).Error)
	svc := newTestProgressService(db, &fixedClock{t: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)})

	res, err := svc.SubmitQuiz(ctx, f.player, f.quiz.QuizID, []model.QuestionSubmission{
		{QuestionID: f.q1, Selection: model.Answered(f.ansA, f.ansB)},
		{QuestionID: f.q2, Selection: model.Answered(f.ansD)},
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Score)
	assert.True(t, res.Passed)
	assert.Nil(t, res.LockedUntil)

	stored, err := repository.NewGormProgressRepository().FindByPlayerAndLesson(ctx, db, f.player.ID, f.qcmLesson.LessonID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, stored.Status)
	assert.NotNil(t, stored.PassedAt)
	assert.Nil(t, stored.QuizLockedUntil)
}

func Test_progressService_SubmitQuiz_Errors(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := newTestProgressService(db, nil)

	t.Run("異常系: クイズが存在しない", func(t *testing.T) {
		_, err := svc.SubmitQuiz(ctx, f.player, uuid.New(), nil)
		requireAppErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: qcm 以外のレッスンのクイズ", func(t *testing.T) {
		quiz := &model.Quiz{QuizID: uuid.New(), LessonID: f.readLesson.LessonID, Title: "誤設定", PassingScore: 50}
		require.NoError(t, db.Create(quiz).Error)
		_, err := svc.SubmitQuiz(ctx, f.player, quiz.QuizID, nil)
		requireAppErrorIs(t, err, model.ErrModeMismatch)
	})

	t.Run("異常系: 匿名の提出", func(t *testing.T) {
		_, err := svc.SubmitQuiz(ctx, model.Actor{}, f.quiz.QuizID, nil)
		requireAppErrorIs(t, err, model.ErrForbidden)
	})
}

func Test_progressService_SubmitQuiz_ConcurrentPass(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)

	progRepo := mocks.NewProgressRepository(t)
	quizRepo := mocks.NewQuizRepository(t)
	lessonRepo := mocks.NewLessonRepository(t)
	svc := NewProgressService(db, progRepo, lessonRepo, quizRepo, mocks.NewCourseRepository(t), mocks.NewUserRepository(t), testConfig())

	quiz := &model.Quiz{QuizID: f.quiz.QuizID, LessonID: f.qcmLesson.LessonID, PassingScore: 0, Questions: []model.Question{
		{QuestionID: f.q2, Answers: []model.Answer{{AnswerID: f.ansC, IsCorrect: true}}},
	}}
	failed := model.NewProgress(f.player.ID, f.qcmLesson.LessonID)
	locked := time.Now().Add(-time.Minute)
	failed.QuizLockedUntil = &locked
	passedAt := time.Now()
	passed := *failed
	passed.PassedAt = &passedAt

	quizRepo.On("FindByID", mock.Anything, mock.Anything, f.quiz.QuizID).Return(quiz, nil).Once()
	lessonRepo.On("FindByID", mock.Anything, mock.Anything, f.qcmLesson.LessonID).Return(f.qcmLesson, nil).Once()
	// 採点前・書き込み前は未合格、条件付き更新が弾かれた後は合格済み
	progRepo.On("FindByPlayerAndLesson", mock.Anything, mock.Anything, f.player.ID, f.qcmLesson.LessonID).Return(failed, nil).Twice()
	progRepo.On("UpdateQuizAttempt", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Progress"), mock.AnythingOfType("time.Time")).
		Return(model.ErrConflict).Once()
	progRepo.On("FindByPlayerAndLesson", mock.Anything, mock.Anything, f.player.ID, f.qcmLesson.LessonID).Return(&passed, nil).Once()

	_, err := svc.SubmitQuiz(ctx, f.player, f.quiz.QuizID, []model.QuestionSubmission{
		{QuestionID: f.q2, Selection: model.Answered(f.ansC)},
	})
	requireAppErrorIs(t, err, model.ErrAlreadyPassed)
}

func Test_progressService_SubmitQuiz_StoreError(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)

	quizRepo := mocks.NewQuizRepository(t)
	svc := NewProgressService(db, mocks.NewProgressRepository(t), mocks.NewLessonRepository(t), quizRepo, mocks.NewCourseRepository(t), mocks.NewUserRepository(t), testConfig())

	quizID := uuid.New()
	quizRepo.On("FindByID", mock.Anything, mock.Anything, quizID).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.SubmitQuiz(ctx, model.Actor{ID: uuid.New(), Role: model.RolePlayer}, quizID, nil)
	appErr := requireAppErrorIs(t, err, model.ErrInternalServer)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
}

func Test_progressService_MarkLessonRead(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)
	clock := &fixedClock{t: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	svc := newTestProgressService(db, clock)

	t.Run("正常系: 既読で完了になり、再実行しても変わらない", func(t *testing.T) {
		first, err := svc.MarkLessonRead(ctx, f.player, f.readLesson.LessonID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, first.Status)
		require.NotNil(t, first.CompletedAt)

		clock.Advance(time.Hour)
		second, err := svc.MarkLessonRead(ctx, f.player, f.readLesson.LessonID)
		require.NoError(t, err)
		assert.Equal(t, first.ProgressID, second.ProgressID)
		assert.True(t, first.CompletedAt.Equal(*second.CompletedAt))

		var count int64
		require.NoError(t, db.Model(&model.Progress{}).Where("player_id = ? AND lesson_id = ?", f.player.ID, f.readLesson.LessonID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("異常系: pro レッスンは検証方法の不一致", func(t *testing.T) {
		_, err := svc.MarkLessonRead(ctx, f.player, f.proLesson.LessonID)
		requireAppErrorIs(t, err, model.ErrModeMismatch)
	})

	t.Run("異常系: qcm レッスンは検証方法の不一致", func(t *testing.T) {
		_, err := svc.MarkLessonRead(ctx, f.player, f.qcmLesson.LessonID)
		requireAppErrorIs(t, err, model.ErrModeMismatch)
	})

	t.Run("異常系: レッスンが存在しない", func(t *testing.T) {
		_, err := svc.MarkLessonRead(ctx, f.player, uuid.New())
		appErr := requireAppErrorIs(t, err, model.ErrNotFound)
		assert.Equal(t, "LESSON_NOT_FOUND", appErr.Detail.Code)
	})
}

func Test_progressService_ProValidateLesson(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := newTestProgressService(db, nil)

	t.Run("正常系: 所有者の講師が status 省略で完了にする", func(t *testing.T) {
		p, err := svc.ProValidateLesson(ctx, f.instructor, f.proLesson.LessonID, f.player.ID, "")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, p.Status)
		require.NotNil(t, p.ValidatedBy)
		assert.Equal(t, f.instructor.ID, *p.ValidatedBy)
		assert.NotNil(t, p.CompletedAt)
	})

	t.Run("正常系: 管理者は任意の状態に戻せる", func(t *testing.T) {
		p, err := svc.ProValidateLesson(ctx, f.admin, f.proLesson.LessonID, f.player.ID, model.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, p.Status)
		assert.Nil(t, p.CompletedAt)
		assert.Equal(t, f.admin.ID, *p.ValidatedBy)
	})

	t.Run("異常系: 他の講師", func(t *testing.T) {
		_, err := svc.ProValidateLesson(ctx, f.other, f.proLesson.LessonID, f.player.ID, model.StatusCompleted)
		requireAppErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("異常系: read レッスンは検証方法の不一致", func(t *testing.T) {
		_, err := svc.ProValidateLesson(ctx, f.instructor, f.readLesson.LessonID, f.player.ID, "")
		requireAppErrorIs(t, err, model.ErrModeMismatch)
	})

	t.Run("異常系: プレイヤーが存在しない", func(t *testing.T) {
		_, err := svc.ProValidateLesson(ctx, f.instructor, f.proLesson.LessonID, uuid.New(), "")
		appErr := requireAppErrorIs(t, err, model.ErrNotFound)
		assert.Equal(t, "PLAYER_NOT_FOUND", appErr.Detail.Code)
	})
}

func Test_progressService_GetProgress(t *testing.T) {
	ctx := testContext()
	db := setupTestDB(t)
	f := seedFixture(t, db)
	svc := newTestProgressService(db, nil)

	_, err := svc.MarkLessonRead(ctx, f.player, f.readLesson.LessonID)
	require.NoError(t, err)
	_, err = svc.ProValidateLesson(ctx, f.instructor, f.proLesson.LessonID, f.player.ID, "")
	require.NoError(t, err)

	// 別の講師のコースの進捗
	otherCourse := &model.Course{CourseID: uuid.New(), OwnerID: f.other.ID, Title: "別コース", Position: 1}
	require.NoError(t, db.Create(otherCourse).Error)
	otherLesson := &model.Lesson{LessonID: uuid.New(), CourseID: otherCourse.CourseID, Position: 1, Title: "read", ValidationMode: model.ValidationModeRead}
	require.NoError(t, db.Create(otherLesson).Error)
	_, err = svc.MarkLessonRead(ctx, f.player, otherLesson.LessonID)
	require.NoError(t, err)

	t.Run("正常系: 本人は全件", func(t *testing.T) {
		list, err := svc.GetProgress(ctx, f.player, f.player.ID, nil)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("正常系: コースで絞り込み", func(t *testing.T) {
		list, err := svc.GetProgress(ctx, f.admin, f.player.ID, &f.course.CourseID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, f.readLesson.LessonID, list[0].LessonID)
		assert.Equal(t, f.proLesson.LessonID, list[1].LessonID)
	})

	t.Run("正常系: 講師は自分のコースの分のみ", func(t *testing.T) {
		list, err := svc.GetProgress(ctx, f.other, f.player.ID, nil)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, otherLesson.LessonID, list[0].LessonID)
	})

	t.Run("異常系: 講師が他人のコースを指定", func(t *testing.T) {
		_, err := svc.GetProgress(ctx, f.other, f.player.ID, &f.course.CourseID)
		requireAppErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("異常系: 他のプレイヤー", func(t *testing.T) {
		_, err := svc.GetProgress(ctx, model.Actor{ID: uuid.New(), Role: model.RolePlayer}, f.player.ID, nil)
		requireAppErrorIs(t, err, model.ErrForbidden)
	})
}
