package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestQuizSet(correctIndices []int) *QuizSet {
	questions := make([]Question, len(correctIndices))
	for i, correct := range correctIndices {
		questions[i] = Question{
			Text:               "question",
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: correct,
		}
	}
	return NewQuizSet("history", questions)
}

func TestNewQuizSet(t *testing.T) {
	set := newTestQuizSet([]int{0, 1, 2})
	assert.Equal(t, "history", set.Category)
	assert.Equal(t, 3, set.Size)
	assert.Len(t, set.Questions, set.Size)
}

func TestNewSession(t *testing.T) {
	session := NewSession(newTestQuizSet([]int{1, 2}))

	assert.Equal(t, 0, session.CurrentIndex)
	assert.Equal(t, 0, session.Score)
	assert.False(t, session.IsComplete())

	q, ok := session.CurrentQuestion()
	assert.True(t, ok)
	assert.Equal(t, 1, q.CorrectAnswerIndex)
}

func TestSession_SubmitAnswer_AlwaysAdvances(t *testing.T) {
	session := NewSession(newTestQuizSet([]int{0, 0, 0}))

	for i := 1; i <= 3; i++ {
		session.SubmitAnswer(3)
		assert.Equal(t, i, session.CurrentIndex, "index advances by exactly one per submission")
	}
	assert.True(t, session.IsComplete())
	assert.Equal(t, 0, session.Score)
}

func TestSession_SubmitAnswer_ScoreBound(t *testing.T) {
	session := NewSession(newTestQuizSet([]int{0, 1, 2, 3}))
	answers := []int{0, 0, 2, 0}

	for _, a := range answers {
		session.SubmitAnswer(a)
		assert.GreaterOrEqual(t, session.Score, 0)
		assert.LessOrEqual(t, session.Score, session.CurrentIndex)
	}
	assert.Equal(t, 2, session.Score)
}

func TestSession_CompletionScenario(t *testing.T) {
	// 5 questions, correct indices [1,0,2,3,1]; submitting [1,0,0,3,1]
	// scores 4 out of 5.
	session := NewSession(newTestQuizSet([]int{1, 0, 2, 3, 1}))
	answers := []int{1, 0, 0, 3, 1}

	for i, a := range answers {
		assert.False(t, session.IsComplete(), "not complete before submission %d", i+1)
		session.SubmitAnswer(a)
	}

	assert.True(t, session.IsComplete())
	score, total := session.FinalScore()
	assert.Equal(t, 4, score)
	assert.Equal(t, 5, total)
}

func TestSession_CurrentQuestionAfterCompletion(t *testing.T) {
	session := NewSession(newTestQuizSet([]int{0}))
	session.SubmitAnswer(0)

	q, ok := session.CurrentQuestion()
	assert.False(t, ok)
	assert.Nil(t, q)
}

func TestSession_StaleSubmission(t *testing.T) {
	session := NewSession(newTestQuizSet([]int{0, 1}))
	session.SubmitAnswer(0)
	session.SubmitAnswer(1)
	assert.True(t, session.IsComplete())
	assert.Equal(t, 2, session.Score)

	// A duplicate submission after completion must not panic, never scores,
	// and completion never regresses.
	session.SubmitAnswer(0)
	assert.True(t, session.IsComplete())
	assert.Equal(t, 2, session.Score)
	assert.Equal(t, 3, session.CurrentIndex)
}

func TestSession_FinalScoreMidQuiz(t *testing.T) {
	session := NewSession(newTestQuizSet([]int{2, 2, 2}))
	session.SubmitAnswer(2)

	score, total := session.FinalScore()
	assert.Equal(t, 1, score)
	assert.Equal(t, 3, total)
	assert.False(t, session.IsComplete())
}
