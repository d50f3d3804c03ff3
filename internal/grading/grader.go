// Package grading はクイズの採点を行います。永続化は行いません。
package grading

import (
	"bytes"
	"slices"

	"go_lms_progress/internal/model"

	"github.com/google/uuid"
)

// Result は1回の提出の採点結果です
type Result struct {
	Score        float64
	Passed       bool
	CorrectCount int
	Total        int
	Details      []model.QuestionResult
}

// Grade はクイズの全設問を採点します。
// 設問ごとに、選択集合と正解集合が完全に一致した場合のみ正解とします (順序・重複は無視)。
// 提出に含まれない設問は未回答 (空集合) として扱い、クイズに存在しない設問IDは無視します。
func Grade(quiz *model.Quiz, subs []model.QuestionSubmission) Result {
	selected := collectSelections(subs)

	res := Result{
		Total:   len(quiz.Questions),
		Details: make([]model.QuestionResult, 0, len(quiz.Questions)),
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		correct := toSet(q.CorrectAnswerIDs())
		chosen := selected[q.QuestionID] // 未回答なら nil = 空集合

		ok := setEqual(correct, chosen)
		if ok {
			res.CorrectCount++
		}
		res.Details = append(res.Details, model.QuestionResult{
			QuestionID:  q.QuestionID,
			SelectedIDs: sortedKeys(chosen),
			CorrectIDs:  sortedKeys(correct),
			IsCorrect:   ok,
		})
	}

	res.Score = Score(res.CorrectCount, res.Total)
	res.Passed = res.Score >= quiz.PassingScore
	return res
}

// Score は正解率 (0-100) を返します。設問が0件なら0です。
// 先に100倍してから割るため、整数になる正解率は誤差なく表現されます。
func Score(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct*100) / float64(total)
}

// collectSelections は同じ設問への複数の回答をまとめます
func collectSelections(subs []model.QuestionSubmission) map[uuid.UUID]map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(subs))
	for _, s := range subs {
		set, ok := out[s.QuestionID]
		if !ok {
			set = make(map[uuid.UUID]struct{})
			out[s.QuestionID] = set
		}
		for _, id := range s.Selection.IDs() {
			set[id] = struct{}{}
		}
	}
	return out
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	m := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func setEqual(a, b map[uuid.UUID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return ids
}
