package domain

// OptionCount is the number of answer options every question carries.
// The generation schema and the answer boundary both depend on it.
const OptionCount = 4

// Question represents a single multiple-choice question.
// Instances are immutable once they have passed schema validation.
type Question struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

// QuizSet represents a validated, immutable batch of questions for one quiz.
type QuizSet struct {
	Category  string     `json:"category"`
	Questions []Question `json:"questions"`
	Size      int        `json:"size"`
}

// NewQuizSet creates a QuizSet from already-validated questions.
func NewQuizSet(category string, questions []Question) *QuizSet {
	return &QuizSet{
		Category:  category,
		Questions: questions,
		Size:      len(questions),
	}
}

// Session represents one user's progression through a QuizSet: the current
// question pointer and the accumulated score. A session holds a read-only
// reference to its QuizSet and is mutated only by SubmitAnswer.
//
// Sessions are not safe for concurrent use; the caller must serialize
// operations per session.
type Session struct {
	QuizSet      *QuizSet `json:"quiz_set"`
	CurrentIndex int      `json:"current_index"`
	Score        int      `json:"score"`
}

// NewSession starts a session at the first question with a zero score.
func NewSession(set *QuizSet) *Session {
	return &Session{QuizSet: set}
}

// CurrentQuestion returns the question awaiting an answer. ok is false once
// every question has been answered. Pure read, no state change.
func (s *Session) CurrentQuestion() (q *Question, ok bool) {
	if s.IsComplete() {
		return nil, false
	}
	return &s.QuizSet.Questions[s.CurrentIndex], true
}

// SubmitAnswer records an answer for the current question and advances to
// the next one. A correct selection increments the score. The index advances
// on every call, even for a stale submission after the quiz is complete; in
// that case the answer is not scored.
func (s *Session) SubmitAnswer(selected int) {
	if s.CurrentIndex < s.QuizSet.Size {
		if selected == s.QuizSet.Questions[s.CurrentIndex].CorrectAnswerIndex {
			s.Score++
		}
	}
	s.CurrentIndex++
}

// IsComplete reports whether every question has been answered. Once true it
// stays true: the index never moves backwards.
func (s *Session) IsComplete() bool {
	return s.CurrentIndex >= s.QuizSet.Size
}

// FinalScore returns the score and the total question count. It may be read
// mid-quiz, in which case the score is partial.
func (s *Session) FinalScore() (score, total int) {
	return s.Score, s.QuizSet.Size
}
