package services

import (
	"github.com/aadhi258/interactive-quiz-app/internal/models"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Grade turns the picked choice per question into answer rows and a score.
// A pick is recorded only when the choice exists and belongs to that
// question; anything else counts as unanswered.
func (s *ScoringService) Grade(sessionID uint, questions []models.Question, choices map[uint]models.Choice, picks map[uint]uint) ([]models.UserAnswer, int) {
	answers := make([]models.UserAnswer, 0, len(questions))
	score := 0

	for _, q := range questions {
		choiceID, ok := picks[q.ID]
		if !ok || choiceID == 0 {
			continue
		}
		choice, ok := choices[choiceID]
		if !ok || choice.QuestionID != q.ID {
			continue
		}

		answers = append(answers, models.UserAnswer{
			SessionID:  sessionID,
			QuestionID: q.ID,
			ChoiceID:   choice.ID,
			IsCorrect:  choice.IsCorrect,
		})
		if choice.IsCorrect {
			score++
		}
	}

	return answers, score
}
