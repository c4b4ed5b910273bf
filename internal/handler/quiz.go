package handler

import (
	"github.com/dainakamiko/quiz/internal/dto"
	"github.com/dainakamiko/quiz/internal/service"
	"github.com/dainakamiko/quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// StartQuiz godoc
// @Summary Start a new quiz
// @Description Generates a quiz for the given category and opens a session
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Category and optional question count"
// @Success 200 {object} dto.StartQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/start [post]
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateStartQuizRequest(req.Category, req.QuestionCount); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.StartQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetCurrentQuestion godoc
// @Summary Get the current question
// @Description Returns the question awaiting an answer, or a completion signal
// @Tags quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{session_id}/question [get]
func (h *QuizHandler) GetCurrentQuestion(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetCurrentQuestion(c.UserContext(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Scores the answer for the current question and advances the session
// @Tags quiz
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Selected option index"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{session_id}/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswerRequest(req.SelectedOption); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.UserContext(), sessionID, &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetResult godoc
// @Summary Get the quiz result
// @Description Returns the score; partial until the session is complete
// @Tags quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{session_id}/result [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetResult(c.UserContext(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
