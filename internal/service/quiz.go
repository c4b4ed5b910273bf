package service

import (
	"context"

	"github.com/dainakamiko/quiz/internal/config"
	"github.com/dainakamiko/quiz/internal/domain"
	"github.com/dainakamiko/quiz/internal/dto"
	"github.com/dainakamiko/quiz/internal/logger"
	"github.com/dainakamiko/quiz/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	StartQuiz(ctx context.Context, req *dto.StartQuizRequest) (*dto.StartQuizResponse, error)
	GetCurrentQuestion(ctx context.Context, sessionID string) (*dto.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetResult(ctx context.Context, sessionID string) (*dto.ResultResponse, error)
}

// quizService implements QuizService
type quizService struct {
	generator domain.QuizGenerator
	sessions  domain.SessionRepository
	cfg       *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	generator domain.QuizGenerator,
	sessions domain.SessionRepository,
	cfg *config.Config,
) QuizService {
	return &quizService{
		generator: generator,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// StartQuiz generates a quiz for the requested category and opens a session
// for it. A generation failure leaves no session behind; the caller is
// expected to retry the request.
func (s *quizService) StartQuiz(ctx context.Context, req *dto.StartQuizRequest) (*dto.StartQuizResponse, error) {
	count := req.QuestionCount
	if count == 0 {
		count = s.cfg.Quiz.DefaultQuestionCount
	}

	quizSet, err := s.generator.Generate(ctx, req.Category, count)
	if err != nil {
		logger.Get().Warn("Quiz generation failed",
			zap.Error(err),
			zap.String("category", req.Category),
			zap.Int("count", count))
		return nil, err
	}

	session := domain.NewSession(quizSet)
	sessionID := util.NewULID()
	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz session started",
		zap.String("sessionID", sessionID),
		zap.String("category", quizSet.Category),
		zap.Int("total_questions", quizSet.Size))

	return &dto.StartQuizResponse{
		SessionID:      sessionID,
		Category:       quizSet.Category,
		TotalQuestions: quizSet.Size,
	}, nil
}

// GetCurrentQuestion implements QuizService. The correct answer index never
// leaves the service.
func (s *quizService) GetCurrentQuestion(ctx context.Context, sessionID string) (*dto.QuestionResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	question, ok := session.CurrentQuestion()
	if !ok {
		return &dto.QuestionResponse{
			TotalQuestions: session.QuizSet.Size,
			Completed:      true,
		}, nil
	}

	return &dto.QuestionResponse{
		Question:       question.Text,
		Options:        question.Options,
		QuestionNumber: session.CurrentIndex + 1,
		TotalQuestions: session.QuizSet.Size,
	}, nil
}

// SubmitAnswer advances the session state machine by one question and
// persists the new state. A submission against an already complete session
// still advances the index but is never scored.
func (s *quizService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	scoreBefore := session.Score
	session.SubmitAnswer(*req.SelectedOption)

	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	correct := session.Score > scoreBefore
	logger.Get().Debug("Answer submitted",
		zap.String("sessionID", sessionID),
		zap.Int("selected_option", *req.SelectedOption),
		zap.Bool("correct", correct),
		zap.Int("current_index", session.CurrentIndex))

	questionNumber := session.CurrentIndex
	if questionNumber > session.QuizSet.Size {
		questionNumber = session.QuizSet.Size
	}

	return &dto.SubmitAnswerResponse{
		Correct:        correct,
		Completed:      session.IsComplete(),
		QuestionNumber: questionNumber,
		TotalQuestions: session.QuizSet.Size,
	}, nil
}

// GetResult implements QuizService. The score is partial until the session
// is complete.
func (s *quizService) GetResult(ctx context.Context, sessionID string) (*dto.ResultResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	score, total := session.FinalScore()
	return &dto.ResultResponse{
		Category:  session.QuizSet.Category,
		Score:     score,
		Total:     total,
		Completed: session.IsComplete(),
	}, nil
}
