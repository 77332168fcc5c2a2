package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResult(t *testing.T) {
	f := newFixture(t)
	quiz := f.createQuiz(t, "Science Quiz")
	q1 := f.addQuestion(t, quiz.ID, "What is H2O?", 1, "Water", "Salt")
	q2 := f.addQuestion(t, quiz.ID, "Red planet?", 2, "Venus", "Mars")
	f.addQuestion(t, quiz.ID, "Skipped?", 1, "yes")

	session, err := f.taking.SubmitQuiz(quiz.ID, SubmitInput{
		UserName: "Bo",
		Answers:  map[uint]uint{q1.ID: q1.Choices[0].ID, q2.ID: q2.Choices[0].ID},
	})
	require.NoError(t, err)

	result, err := f.results.GetResult(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science Quiz", result.Quiz.Title)
	assert.Equal(t, "Bo", result.Session.UserName)
	assert.Equal(t, 1, result.Session.Score)
	assert.Equal(t, 3, result.Session.TotalQuestions)
	assert.Equal(t, 33.33, result.Percentage)

	require.Len(t, result.Answers, 2)
	byQuestion := map[uint]AnswerDetail{}
	for _, a := range result.Answers {
		byQuestion[a.QuestionID] = a
	}
	assert.Equal(t, "What is H2O?", byQuestion[q1.ID].QuestionText)
	assert.Equal(t, "Water", byQuestion[q1.ID].ChoiceText)
	assert.True(t, byQuestion[q1.ID].IsCorrect)
	assert.Equal(t, "Venus", byQuestion[q2.ID].ChoiceText)
	assert.False(t, byQuestion[q2.ID].IsCorrect)
}

func TestGetResultNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.results.GetResult(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "result not found")
}
