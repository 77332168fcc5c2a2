package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/aadhi258/interactive-quiz-app/internal/models"

	"gorm.io/gorm"
)

// ResultNotifier is told about every committed quiz session.
type ResultNotifier interface {
	QuizSessionCompleted(session models.QuizSession)
}

type TakingService struct {
	db       *gorm.DB
	scoring  *ScoringService
	attempts *AttemptService
	notifier ResultNotifier
}

func NewTakingService(db *gorm.DB, scoring *ScoringService, attempts *AttemptService, notifier ResultNotifier) *TakingService {
	return &TakingService{db: db, scoring: scoring, attempts: attempts, notifier: notifier}
}

type TakeChoice struct {
	ID          uint   `json:"id"`
	ChoiceText  string `json:"choice_text"`
	ChoiceOrder int    `json:"choice_order"`
}

type TakeQuestion struct {
	ID            uint         `json:"id"`
	QuestionText  string       `json:"question_text"`
	QuestionOrder int          `json:"question_order"`
	Choices       []TakeChoice `json:"choices"`
}

// QuizAttempt is what a participant sees when starting a quiz. Choice
// correctness is deliberately absent.
type QuizAttempt struct {
	Quiz         models.Quiz    `json:"quiz"`
	Questions    []TakeQuestion `json:"questions"`
	AttemptToken string         `json:"attempt_token"`
	StartedAt    time.Time      `json:"started_at"`
}

type AttemptProgress struct {
	AttemptToken string `json:"attempt_token"`
	Cursor       int    `json:"cursor"`
	Answered     int    `json:"answered"`
}

type SubmitInput struct {
	UserName     string        `json:"user_name" validate:"max=100" label:"user name"`
	Answers      map[uint]uint `json:"answers"`
	AttemptToken string        `json:"attempt_token"`
}

func (s *TakingService) StartQuiz(quizID uint) (*QuizAttempt, error) {
	detail, err := loadQuizDetail(s.db, quizID)
	if err != nil {
		return nil, err
	}
	if len(detail.Questions) == 0 {
		return nil, fmt.Errorf("%w: this quiz has no questions yet", ErrEmptyQuiz)
	}

	token, claims, err := s.attempts.Issue(quizID)
	if err != nil {
		return nil, err
	}

	attempt := &QuizAttempt{
		Quiz:         detail.Quiz,
		Questions:    make([]TakeQuestion, 0, len(detail.Questions)),
		AttemptToken: token,
		StartedAt:    claims.StartedAt,
	}
	for _, q := range detail.Questions {
		tq := TakeQuestion{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			QuestionOrder: q.QuestionOrder,
			Choices:       make([]TakeChoice, 0, len(q.Choices)),
		}
		for _, c := range q.Choices {
			tq.Choices = append(tq.Choices, TakeChoice{ID: c.ID, ChoiceText: c.ChoiceText, ChoiceOrder: c.ChoiceOrder})
		}
		attempt.Questions = append(attempt.Questions, tq)
	}
	return attempt, nil
}

// RecordAnswer stores one pick in the attempt token and moves the cursor
// past that question. Nothing is persisted.
func (s *TakingService) RecordAnswer(quizID uint, token string, questionID, choiceID uint) (*AttemptProgress, error) {
	if _, err := findQuiz(s.db, quizID); err != nil {
		return nil, err
	}
	claims, err := s.attempts.Parse(token, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := questionsByQuiz(s.db, quizID)
	if err != nil {
		return nil, err
	}
	pos := -1
	for i, q := range questions {
		if q.ID == questionID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("%w: question not found", ErrNotFound)
	}

	claims.Answers[questionID] = choiceID
	claims.Cursor = pos + 1

	next, err := s.attempts.Sign(claims)
	if err != nil {
		return nil, err
	}
	return &AttemptProgress{AttemptToken: next, Cursor: claims.Cursor, Answered: len(claims.Answers)}, nil
}

// SubmitQuiz scores the picks and stores the session with its answers in
// a single transaction.
func (s *TakingService) SubmitQuiz(quizID uint, input SubmitInput) (*models.QuizSession, error) {
	input.UserName = strings.TrimSpace(input.UserName)
	if input.UserName == "" {
		input.UserName = models.AnonymousUser
	}

	var session models.QuizSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findQuiz(tx, quizID); err != nil {
			return err
		}
		questions, err := questionsByQuiz(tx, quizID)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			return fmt.Errorf("%w: this quiz has no questions", ErrEmptyQuiz)
		}
		if err := validateInput(input); err != nil {
			return err
		}

		picks := make(map[uint]uint, len(questions))
		if input.AttemptToken != "" {
			claims, err := s.attempts.Parse(input.AttemptToken, quizID)
			if err != nil {
				return err
			}
			for questionID, choiceID := range claims.Answers {
				picks[questionID] = choiceID
			}
		}
		for questionID, choiceID := range input.Answers {
			picks[questionID] = choiceID
		}

		session = models.QuizSession{
			QuizID:         quizID,
			UserName:       input.UserName,
			TotalQuestions: len(questions),
			CompletedAt:    time.Now().UTC(),
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		choices, err := choicesByIDs(tx, pickedChoiceIDs(questions, picks))
		if err != nil {
			return err
		}
		answers, score := s.scoring.Grade(session.ID, questions, choices, picks)
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}

		session.Score = score
		return tx.Model(&session).Update("score", score).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.QuizSessionCompleted(session)
	}
	return &session, nil
}

func pickedChoiceIDs(questions []models.Question, picks map[uint]uint) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		if id, ok := picks[q.ID]; ok && id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
