package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dainakamiko/quiz/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const systemInstruction = "You are an AI assistant that creates quiz questions. Respond only in JSON format."

const promptTemplate = `Create %d quiz questions about "%s".
Each question has exactly 4 options and exactly one correct answer.

Return ONLY a JSON object in the following format, with no other text:
{
    "questions": [
        {
            "question": "question text",
            "options": ["option 1", "option 2", "option 3", "option 4"],
            "correct_answer_index": 0
        }
    ]
}
The correct_answer_index is the index of the correct option (0-3).`

// LLMQuizGenerator implements the domain.QuizGenerator interface on top of a
// langchaingo model. It sends exactly one generation request per call and
// validates the raw response against the quiz schema before anything
// downstream is allowed to trust it.
type LLMQuizGenerator struct {
	llm    llms.Model
	logger *zap.Logger
}

// NewLLMQuizGenerator creates a new instance of LLMQuizGenerator.
func NewLLMQuizGenerator(llm llms.Model, logger *zap.Logger) (domain.QuizGenerator, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	return &LLMQuizGenerator{llm: llm, logger: logger}, nil
}

// Generate requests a batch of questions for the category and validates it.
// count is the minimum number of valid questions; when the model
// over-produces, all valid questions are kept.
func (g *LLMQuizGenerator) Generate(ctx context.Context, category string, count int) (*domain.QuizSet, error) {
	if count <= 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("question count must be positive, got %d", count))
	}

	prompt := fmt.Sprintf(promptTemplate, count, category)

	g.logger.Info("Requesting quiz generation",
		zap.String("category", category),
		zap.Int("count", count))

	resp, err := g.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemInstruction),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithJSONMode(),
	)
	if err != nil {
		g.logger.Error("LLM request failed", zap.Error(err), zap.String("category", category))
		return nil, domain.NewLLMServiceError(err)
	}
	if len(resp.Choices) == 0 {
		g.logger.Error("LLM returned no choices", zap.String("category", category))
		return nil, domain.NewLLMServiceError(errors.New("empty response from model"))
	}

	content := resp.Choices[0].Content
	g.logger.Debug("Raw LLM response received", zap.String("raw_response", content))

	questions, err := parseQuizResponse(content, count, g.logger)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Quiz generation succeeded",
		zap.String("category", category),
		zap.Int("valid_questions", len(questions)))

	return domain.NewQuizSet(category, questions), nil
}

// parseQuizResponse runs the validation pipeline over the raw model output.
// Checks run in order and the first failing batch-level check wins:
// the text must parse as a JSON object with a "questions" array of at least
// count elements; malformed elements are dropped individually; the surviving
// elements must still number at least count.
func parseQuizResponse(content string, count int, logger *zap.Logger) ([]domain.Question, error) {
	cleaned := stripCodeFence(strings.TrimSpace(content))

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON, wrong shape.
			return nil, domain.NewLLMSchemaError("response is not a JSON object")
		}
		logger.Error("Failed to parse LLM response as JSON", zap.Error(err), zap.String("response", cleaned))
		return nil, domain.NewLLMParseError(err)
	}

	rawQuestions, ok := envelope["questions"]
	if !ok {
		return nil, domain.NewLLMSchemaError(`response has no "questions" key`)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawQuestions, &items); err != nil {
		return nil, domain.NewLLMSchemaError(`"questions" is not an array`)
	}
	if len(items) < count {
		return nil, domain.NewLLMSchemaError(
			fmt.Sprintf("expected at least %d questions, got %d", count, len(items)))
	}

	valid := make([]domain.Question, 0, len(items))
	for i, item := range items {
		q, err := parseQuestion(item)
		if err != nil {
			logger.Warn("Dropping malformed question from LLM batch",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		valid = append(valid, q)
	}

	if len(valid) < count {
		return nil, domain.NewLLMSchemaError(
			fmt.Sprintf("only %d of %d questions are valid, need at least %d", len(valid), len(items), count))
	}

	return valid, nil
}

// parseQuestion validates a single element of the batch. A failure here drops
// the element, it never fails the whole batch.
func parseQuestion(raw json.RawMessage) (domain.Question, error) {
	var item struct {
		Question *string      `json:"question"`
		Options  []string     `json:"options"`
		Index    *json.Number `json:"correct_answer_index"`
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return domain.Question{}, fmt.Errorf("malformed question element: %w", err)
	}
	if item.Question == nil {
		return domain.Question{}, errors.New(`missing "question" key`)
	}
	if len(item.Options) != domain.OptionCount {
		return domain.Question{}, fmt.Errorf("expected %d options, got %d", domain.OptionCount, len(item.Options))
	}
	if item.Index == nil {
		return domain.Question{}, errors.New(`missing "correct_answer_index" key`)
	}
	idx, err := item.Index.Int64()
	if err != nil {
		return domain.Question{}, fmt.Errorf("correct_answer_index is not an integer: %w", err)
	}
	if idx < 0 || idx >= domain.OptionCount {
		return domain.Question{}, fmt.Errorf("correct_answer_index %d out of range [0,%d]", idx, domain.OptionCount-1)
	}

	return domain.Question{
		Text:               *item.Question,
		Options:            item.Options,
		CorrectAnswerIndex: int(idx),
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some models
// emit even when asked for bare JSON.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Static assertion to ensure LLMQuizGenerator implements QuizGenerator
var _ domain.QuizGenerator = (*LLMQuizGenerator)(nil)
