package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizSessionPercentage(t *testing.T) {
	cases := []struct {
		score, total int
		want         float64
	}{
		{0, 0, 0},
		{1, 1, 100},
		{0, 4, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 32, 3.12},
		{3, 32, 9.38},
		{5, 5, 100},
	}

	for _, tc := range cases {
		s := QuizSession{Score: tc.score, TotalQuestions: tc.total}
		assert.Equal(t, tc.want, s.Percentage(), "score %d of %d", tc.score, tc.total)
	}
}
