// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz は qcm モードのレッスンに 1:1 で紐づく小テストです
type Quiz struct {
	QuizID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	LessonID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"lesson_id"`
	Title        string    `gorm:"not null" json:"title"`
	PassingScore float64   `gorm:"not null;default:0" json:"passing_score"` // 0-100 (%)
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Lesson    *Lesson    `gorm:"foreignKey:LessonID;references:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	Questions []Question `gorm:"foreignKey:QuizID;references:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type Question struct {
	QuestionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"question_id"`
	QuizID     uuid.UUID `gorm:"type:uuid;not null;index:idx_quiz_position,unique" json:"quiz_id"`
	Position   int       `gorm:"not null;index:idx_quiz_position,unique" json:"order"`
	Text       string    `gorm:"not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Quiz    *Quiz    `gorm:"foreignKey:QuizID;references:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Answers []Answer `gorm:"foreignKey:QuestionID;references:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Answer は選択肢です。1つの設問に正解が0個・1個・複数個あり得ます。
type Answer struct {
	AnswerID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"answer_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Position   int       `gorm:"not null;default:0" json:"order"`
	Text       string    `gorm:"not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`

	Question *Question `gorm:"foreignKey:QuestionID;references:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Answer) TableName() string {
	return "answers"
}

// CorrectAnswerIDs は正解の選択肢IDを返します
func (q *Question) CorrectAnswerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(q.Answers))
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.AnswerID)
		}
	}
	return ids
}

type CreateQuizRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	PassingScore float64 `json:"passing_score" validate:"gte=0,lte=100"`
}

type CreateAnswerRequest struct {
	Text      string `json:"text" validate:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateQuestionRequest struct {
	Text    string                `json:"text" validate:"required,max=1000"`
	Answers []CreateAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

// QuizView はプレイヤー向けのクイズ表示です。編集権限がない場合 is_correct を含めません。
type QuizView struct {
	QuizID       uuid.UUID      `json:"quiz_id"`
	LessonID     uuid.UUID      `json:"lesson_id"`
	Title        string         `json:"title"`
	PassingScore float64        `json:"passing_score"`
	Questions    []QuestionView `json:"questions"`
}

type QuestionView struct {
	QuestionID uuid.UUID    `json:"question_id"`
	Order      int          `json:"order"`
	Text       string       `json:"text"`
	Answers    []AnswerView `json:"answers"`
}

type AnswerView struct {
	AnswerID  uuid.UUID `json:"answer_id"`
	Text      string    `json:"text"`
	IsCorrect *bool     `json:"is_correct,omitempty"`
}
