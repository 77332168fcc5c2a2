package services

import (
	"fmt"
	"strings"

	"github.com/aadhi258/interactive-quiz-app/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuizInput struct {
	Title       string `json:"title" validate:"required,max=200" label:"quiz title"`
	Description string `json:"description"`
}

// QuestionInput is the authoring form for one question: up to four choice
// slots and the 1-based slot holding the correct answer.
type QuestionInput struct {
	QuestionText string   `json:"question_text" validate:"required" label:"question text"`
	Choices      []string `json:"choices" validate:"max=4" label:"choices"`
	Correct      int      `json:"correct"`
}

// ChoiceDraft is one choice to store. Order is the 1-based slot; zero
// means the draft's position in its list.
type ChoiceDraft struct {
	Text      string `json:"choice_text"`
	IsCorrect bool   `json:"is_correct"`
	Order     int    `json:"choice_order,omitempty"`
}

type QuestionDraft struct {
	QuestionText string        `json:"question_text" validate:"required" label:"question text"`
	Choices      []ChoiceDraft `json:"choices" validate:"max=4" label:"choices"`
}

type QuestionDetail struct {
	models.Question
	Choices []models.Choice `json:"choices"`
}

type QuizDetail struct {
	Quiz      models.Quiz      `json:"quiz"`
	Questions []QuestionDetail `json:"questions"`
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Order("created_at DESC").Order("id DESC").Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *QuizService) GetQuiz(quizID uint) (*models.Quiz, error) {
	return findQuiz(s.db, quizID)
}

func (s *QuizService) CreateQuiz(input QuizInput) (*models.Quiz, error) {
	input = input.normalized()
	if err := validateInput(input); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) UpdateQuiz(quizID uint, input QuizInput) (*models.Quiz, error) {
	quiz, err := findQuiz(s.db, quizID)
	if err != nil {
		return nil, err
	}

	input = input.normalized()
	if err := validateInput(input); err != nil {
		return nil, err
	}

	quiz.Title = input.Title
	quiz.Description = input.Description
	if err := s.db.Save(quiz).Error; err != nil {
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz removes the quiz together with its questions, choices,
// sessions and recorded answers.
func (s *QuizService) DeleteQuiz(quizID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findQuiz(tx, quizID); err != nil {
			return err
		}

		if err := tx.Where("session_id IN (SELECT id FROM quiz_sessions WHERE quiz_id = ?)", quizID).
			Delete(&models.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.QuizSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (SELECT id FROM questions WHERE quiz_id = ?)", quizID).
			Delete(&models.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Quiz{}, quizID).Error
	})
}

func (s *QuizService) QuestionsByQuiz(quizID uint) ([]models.Question, error) {
	return questionsByQuiz(s.db, quizID)
}

func (s *QuizService) ChoicesByQuestion(questionID uint) ([]models.Choice, error) {
	return choicesByQuestion(s.db, questionID)
}

// QuizDetail loads a quiz with its ordered questions and their choices.
func (s *QuizService) QuizDetail(quizID uint) (*QuizDetail, error) {
	return loadQuizDetail(s.db, quizID)
}

func (s *QuizService) AddQuestion(quizID uint, input QuestionInput) (*QuestionDetail, error) {
	input.QuestionText = strings.TrimSpace(input.QuestionText)

	drafts := make([]ChoiceDraft, len(input.Choices))
	for i, text := range input.Choices {
		drafts[i] = ChoiceDraft{Text: text, IsCorrect: input.Correct == i+1}
	}

	var created *QuestionDetail
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findQuiz(tx, quizID); err != nil {
			return err
		}
		if err := validateInput(input); err != nil {
			return err
		}

		q, err := insertQuestion(tx, quizID, input.QuestionText, drafts)
		if err != nil {
			return err
		}
		created = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteQuestion removes a question of the given quiz with its choices and
// the answers recorded against it. A question owned by another quiz is
// reported as not found and left untouched.
func (s *QuizService) DeleteQuestion(quizID, questionID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			return notFound("question not found", err)
		}
		if question.QuizID != quizID {
			return fmt.Errorf("%w: invalid question", ErrNotFound)
		}

		if err := tx.Where("question_id = ?", questionID).Delete(&models.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
}

// ImportQuestions appends the drafts to the quiz in order. Either every
// draft is stored or none is.
func (s *QuizService) ImportQuestions(quizID uint, drafts []QuestionDraft) (int, error) {
	count := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findQuiz(tx, quizID); err != nil {
			return err
		}

		for i, draft := range drafts {
			draft.QuestionText = strings.TrimSpace(draft.QuestionText)
			if err := validateInput(draft); err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
			if _, err := insertQuestion(tx, quizID, draft.QuestionText, draft.Choices); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (in QuizInput) normalized() QuizInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func insertQuestion(tx *gorm.DB, quizID uint, text string, choices []ChoiceDraft) (*QuestionDetail, error) {
	var maxOrder int
	err := tx.Model(&models.Question{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(MAX(question_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return nil, err
	}

	question := models.Question{
		QuizID:        quizID,
		QuestionText:  text,
		QuestionOrder: maxOrder + 1,
	}
	if err := tx.Create(&question).Error; err != nil {
		return nil, err
	}

	detail := &QuestionDetail{Question: question, Choices: []models.Choice{}}
	for i, c := range choices {
		choiceText := strings.TrimSpace(c.Text)
		if choiceText == "" {
			continue
		}
		order := c.Order
		if order <= 0 {
			order = i + 1
		}
		choice := models.Choice{
			QuestionID:  question.ID,
			ChoiceText:  choiceText,
			IsCorrect:   c.IsCorrect,
			ChoiceOrder: order,
		}
		if err := tx.Create(&choice).Error; err != nil {
			return nil, err
		}
		detail.Choices = append(detail.Choices, choice)
	}
	return detail, nil
}

func findQuiz(db *gorm.DB, quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return nil, notFound("quiz not found", err)
	}
	return &quiz, nil
}

func questionsByQuiz(db *gorm.DB, quizID uint) ([]models.Question, error) {
	var questions []models.Question
	err := db.Where("quiz_id = ?", quizID).
		Order("question_order ASC").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func choicesByQuestion(db *gorm.DB, questionID uint) ([]models.Choice, error) {
	var choices []models.Choice
	err := db.Where("question_id = ?", questionID).
		Order("choice_order ASC").
		Order("id ASC").
		Find(&choices).Error
	if err != nil {
		return nil, err
	}
	return choices, nil
}

func choicesByIDs(db *gorm.DB, ids []uint) (map[uint]models.Choice, error) {
	byID := make(map[uint]models.Choice, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var choices []models.Choice
	if err := db.Where("id IN ?", ids).Find(&choices).Error; err != nil {
		return nil, err
	}
	for _, c := range choices {
		byID[c.ID] = c
	}
	return byID, nil
}

func loadQuizDetail(db *gorm.DB, quizID uint) (*QuizDetail, error) {
	quiz, err := findQuiz(db, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := questionsByQuiz(db, quizID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]models.Choice, len(questions))
	if len(questions) > 0 {
		ids := make([]uint, len(questions))
		for i, q := range questions {
			ids[i] = q.ID
		}
		var choices []models.Choice
		err := db.Where("question_id IN ?", ids).
			Order("choice_order ASC").
			Order("id ASC").
			Find(&choices).Error
		if err != nil {
			return nil, err
		}
		for _, c := range choices {
			grouped[c.QuestionID] = append(grouped[c.QuestionID], c)
		}
	}

	detail := &QuizDetail{Quiz: *quiz, Questions: make([]QuestionDetail, 0, len(questions))}
	for _, q := range questions {
		choices := grouped[q.ID]
		if choices == nil {
			choices = []models.Choice{}
		}
		detail.Questions = append(detail.Questions, QuestionDetail{Question: q, Choices: choices})
	}
	return detail, nil
}
