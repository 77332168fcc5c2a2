package main

import (
	"encoding/json"
	"testing"

	"github.com/aadhi258/interactive-quiz-app/internal/handlers"
	"github.com/aadhi258/interactive-quiz-app/internal/services"
	"github.com/aadhi258/interactive-quiz-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData(t *testing.T) []handlers.ExportData {
	t.Helper()
	var data []handlers.ExportData
	require.NoError(t, json.Unmarshal(sampleQuizzes, &data))
	return data
}

func TestSeedCreatesSampleQuizzes(t *testing.T) {
	quizzes := services.NewQuizService(testutil.NewDB(t))

	created, err := seed(quizzes, sampleData(t))
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	list, err := quizzes.ListQuizzes()
	require.NoError(t, err)
	counts := map[string]int{}
	for _, q := range list {
		detail, err := quizzes.QuizDetail(q.ID)
		require.NoError(t, err)
		counts[q.Title] = len(detail.Questions)
		for _, question := range detail.Questions {
			assert.Len(t, question.Choices, 4)
		}
	}
	assert.Equal(t, map[string]int{
		"General Knowledge Quiz": 5,
		"Science Quiz":           4,
		"Programming Basics":     3,
	}, counts)
}

func TestSeedSkipsWhenQuizzesExist(t *testing.T) {
	quizzes := services.NewQuizService(testutil.NewDB(t))
	_, err := quizzes.CreateQuiz(services.QuizInput{Title: "mine"})
	require.NoError(t, err)

	created, err := seed(quizzes, sampleData(t))
	require.NoError(t, err)
	assert.Zero(t, created)

	list, err := quizzes.ListQuizzes()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
