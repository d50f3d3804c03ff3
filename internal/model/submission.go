// internal/model/submission.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Selection は設問への回答です。回答済み (選択肢の集合) か未回答のどちらかを表します。
type Selection struct {
	ids      []uuid.UUID
	answered bool
}

func Answered(ids ...uuid.UUID) Selection {
	return Selection{ids: ids, answered: true}
}

func Unanswered() Selection {
	return Selection{}
}

func (s Selection) IsAnswered() bool { return s.answered }

// IDs は選択された選択肢IDを返します。未回答の場合は空です。
func (s Selection) IDs() []uuid.UUID {
	if !s.answered {
		return nil
	}
	return s.ids
}

type QuestionSubmission struct {
	QuestionID uuid.UUID
	Selection  Selection
}

// SubmittedAnswer はリクエスト上の1設問分の回答。answer_ids は欠落・不正でも受け付け、未回答として扱います。
type SubmittedAnswer struct {
	QuestionID uuid.UUID       `json:"question_id" validate:"required"`
	AnswerIDs  json.RawMessage `json:"answer_ids,omitempty"`
}

type SubmitQuizRequest struct {
	Answers []SubmittedAnswer `json:"answers" validate:"dive"`
}

// ToSubmissions はリクエストをドメインの回答に変換します
func (r *SubmitQuizRequest) ToSubmissions() []QuestionSubmission {
	subs := make([]QuestionSubmission, 0, len(r.Answers))
	for _, a := range r.Answers {
		subs = append(subs, QuestionSubmission{QuestionID: a.QuestionID, Selection: parseSelection(a.AnswerIDs)})
	}
	return subs
}

func parseSelection(raw json.RawMessage) Selection {
	if len(raw) == 0 {
		return Unanswered()
	}
	var strs []string
	if err := json.Unmarshal(raw, &strs); err != nil || strs == nil {
		return Unanswered()
	}
	ids := make([]uuid.UUID, 0, len(strs))
	for _, s := range strs {
		id, err := uuid.Parse(s)
		if err != nil {
			return Unanswered()
		}
		ids = append(ids, id)
	}
	return Answered(ids...)
}

// QuizSubmissionResult はクイズ提出のレスポンス
type QuizSubmissionResult struct {
	Score       float64          `json:"score"`
	Passed      bool             `json:"passed"`
	LockedUntil *time.Time       `json:"locked_until,omitempty"`
	Details     []QuestionResult `json:"details"`
}
