package services

import (
	"testing"

	"github.com/aadhi258/interactive-quiz-app/internal/models"
	"github.com/aadhi258/interactive-quiz-app/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	sessions []models.QuizSession
}

func (f *fakeNotifier) QuizSessionCompleted(session models.QuizSession) {
	f.sessions = append(f.sessions, session)
}

type fixture struct {
	db       *gorm.DB
	quizzes  *QuizService
	taking   *TakingService
	results  *ResultService
	attempts *AttemptService
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	attempts := NewAttemptService("test-secret")
	notifier := &fakeNotifier{}
	return &fixture{
		db:       db,
		quizzes:  NewQuizService(db),
		taking:   NewTakingService(db, NewScoringService(), attempts, notifier),
		results:  NewResultService(db),
		attempts: attempts,
		notifier: notifier,
	}
}

func (f *fixture) createQuiz(t *testing.T, title string) *models.Quiz {
	t.Helper()
	quiz, err := f.quizzes.CreateQuiz(QuizInput{Title: title})
	require.NoError(t, err)
	return quiz
}

func (f *fixture) addQuestion(t *testing.T, quizID uint, text string, correct int, choices ...string) *QuestionDetail {
	t.Helper()
	q, err := f.quizzes.AddQuestion(quizID, QuestionInput{QuestionText: text, Choices: choices, Correct: correct})
	require.NoError(t, err)
	return q
}

func (f *fixture) count(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
