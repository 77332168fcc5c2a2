package services

import (
	"github.com/aadhi258/interactive-quiz-app/internal/models"

	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

type AnswerDetail struct {
	models.UserAnswer
	QuestionText string `json:"question_text"`
	ChoiceText   string `json:"choice_text"`
}

type ResultView struct {
	Session    models.QuizSession `json:"session"`
	Quiz       models.Quiz        `json:"quiz"`
	Percentage float64            `json:"percentage"`
	Answers    []AnswerDetail     `json:"answers"`
}

func (s *ResultService) GetResult(sessionID uint) (*ResultView, error) {
	var session models.QuizSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, notFound("result not found", err)
	}

	quiz, err := findQuiz(s.db, session.QuizID)
	if err != nil {
		return nil, err
	}

	answers, err := answersBySession(s.db, sessionID)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]uint, 0, len(answers))
	choiceIDs := make([]uint, 0, len(answers))
	for _, a := range answers {
		questionIDs = append(questionIDs, a.QuestionID)
		choiceIDs = append(choiceIDs, a.ChoiceID)
	}

	questionText := make(map[uint]string, len(questionIDs))
	if len(questionIDs) > 0 {
		var questions []models.Question
		if err := s.db.Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
			return nil, err
		}
		for _, q := range questions {
			questionText[q.ID] = q.QuestionText
		}
	}
	choices, err := choicesByIDs(s.db, choiceIDs)
	if err != nil {
		return nil, err
	}

	view := &ResultView{
		Session:    session,
		Quiz:       *quiz,
		Percentage: session.Percentage(),
		Answers:    make([]AnswerDetail, 0, len(answers)),
	}
	for _, a := range answers {
		view.Answers = append(view.Answers, AnswerDetail{
			UserAnswer:   a,
			QuestionText: questionText[a.QuestionID],
			ChoiceText:   choices[a.ChoiceID].ChoiceText,
		})
	}
	return view, nil
}

func answersBySession(db *gorm.DB, sessionID uint) ([]models.UserAnswer, error) {
	var answers []models.UserAnswer
	if err := db.Where("session_id = ?", sessionID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
