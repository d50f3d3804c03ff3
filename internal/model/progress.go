// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// QuestionResult は採点結果の設問ごとの内訳です
type QuestionResult struct {
	QuestionID  uuid.UUID   `json:"question_id"`
	SelectedIDs []uuid.UUID `json:"selected_ids"`
	CorrectIDs  []uuid.UUID `json:"correct_ids"`
	IsCorrect   bool        `json:"is_correct"`
}

// Progress はプレイヤー×レッスンの進捗です (組み合わせは一意)
type Progress struct {
	ProgressID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"progress_id"`
	PlayerID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_player_lesson,unique" json:"player_id"`
	LessonID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_player_lesson,unique" json:"lesson_id"`
	Status      ProgressStatus `gorm:"type:varchar(20);not null;default:'not_started'" json:"status"`
	Score       *float64       `json:"score,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	ValidatedBy *uuid.UUID     `gorm:"type:uuid" json:"validated_by,omitempty"`

	// クイズ再受験の管理
	QuizLockedUntil   *time.Time                          `json:"quiz_locked_until,omitempty"`
	PassedAt          *time.Time                          `json:"passed_at,omitempty"`
	LastQuizScore     *float64                            `json:"last_quiz_score,omitempty"`
	LastQuizAttemptAt *time.Time                          `json:"last_quiz_attempt_at,omitempty"`
	LastQuizDetails   datatypes.JSONSlice[QuestionResult] `json:"last_quiz_details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Lesson *Lesson `gorm:"foreignKey:LessonID;references:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	Player *User   `gorm:"foreignKey:PlayerID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Progress) TableName() string {
	return "lesson_progress"
}

// NewProgress は未着手の進捗を生成します (永続化はしない)
func NewProgress(playerID, lessonID uuid.UUID) *Progress {
	return &Progress{
		ProgressID: uuid.New(),
		PlayerID:   playerID,
		LessonID:   lessonID,
		Status:     StatusNotStarted,
	}
}

// CheckQuizAttempt は受験可否を判定します。合格済みの判定がロック判定より優先されます。
func (p *Progress) CheckQuizAttempt(now time.Time) error {
	if p == nil {
		return nil
	}
	if p.PassedAt != nil {
		return ErrAlreadyPassed
	}
	if p.QuizLockedUntil != nil && p.QuizLockedUntil.After(now) {
		return &StillLockedError{Until: *p.QuizLockedUntil}
	}
	return nil
}

// ApplyQuizOutcome は採点結果を反映します。status は検証ポリシーが採点結果から決めた状態です。
// completed なら合格として記録し、それ以外はロックを設定します。
func (p *Progress) ApplyQuizOutcome(score float64, status ProgressStatus, details []QuestionResult, now time.Time, lockout time.Duration) {
	p.LastQuizScore = &score
	p.LastQuizAttemptAt = &now
	p.LastQuizDetails = datatypes.NewJSONSlice(details)
	p.Status = status

	if status == StatusCompleted {
		p.Score = &score
		p.PassedAt = &now
		p.CompletedAt = &now
		p.QuizLockedUntil = nil
		return
	}
	until := now.Add(lockout)
	p.QuizLockedUntil = &until
}

// SetStatus は講師による検証結果を反映します
func (p *Progress) SetStatus(status ProgressStatus, validatedBy uuid.UUID, now time.Time) {
	p.Status = status
	p.ValidatedBy = &validatedBy
	if status == StatusCompleted {
		if p.CompletedAt == nil {
			p.CompletedAt = &now
		}
	} else {
		p.CompletedAt = nil
	}
}

// MarkCompleted は既読完了を反映します。変更があった場合 true を返します。
func (p *Progress) MarkCompleted(now time.Time) bool {
	if p.Status == StatusCompleted {
		return false
	}
	p.Status = StatusCompleted
	p.CompletedAt = &now
	return true
}

// ProValidateRequest は講師による検証のリクエストボディ。status 省略時は completed。
type ProValidateRequest struct {
	Status ProgressStatus `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
}
