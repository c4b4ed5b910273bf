package dto

// StartQuizRequest represents the request body for starting a new quiz
// @Description Request body for starting a quiz
type StartQuizRequest struct {
	Category string `json:"category"`
	// QuestionCount is optional; the configured default applies when omitted.
	QuestionCount int `json:"question_count,omitempty"`
}

// StartQuizResponse represents a newly started quiz in the API response
type StartQuizResponse struct {
	SessionID      string `json:"session_id"`
	Category       string `json:"category"`
	TotalQuestions int    `json:"total_questions"`
}

// QuestionResponse represents the current question in the API response.
// When the quiz is complete, Completed is true and no question is included.
type QuestionResponse struct {
	Question       string   `json:"question,omitempty"`
	Options        []string `json:"options,omitempty"`
	QuestionNumber int      `json:"question_number,omitempty"`
	TotalQuestions int      `json:"total_questions"`
	Completed      bool     `json:"completed"`
}

// SubmitAnswerRequest represents a user's answer in the API request.
// SelectedOption is a pointer so that option 0 and a missing field can be
// told apart at the boundary.
type SubmitAnswerRequest struct {
	SelectedOption *int `json:"selected_option"`
}

// SubmitAnswerResponse reports the state transition after an answer
type SubmitAnswerResponse struct {
	Correct        bool `json:"correct"`
	Completed      bool `json:"completed"`
	QuestionNumber int  `json:"question_number"`
	TotalQuestions int  `json:"total_questions"`
}

// ResultResponse represents the final (or partial) score in the API response
type ResultResponse struct {
	Category  string `json:"category"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Completed bool   `json:"completed"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
