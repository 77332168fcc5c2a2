package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptTokenRoundTrip(t *testing.T) {
	svc := NewAttemptService("secret")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, issued, err := svc.Issue(4)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, "4", issued.Subject)

	issued.Answers[12] = 40
	issued.Cursor = 1
	token, err := svc.Sign(issued)
	require.NoError(t, err)

	claims, err := svc.Parse(token, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 4, claims.QuizID)
	assert.Equal(t, 1, claims.Cursor)
	assert.Equal(t, map[uint]uint{12: 40}, claims.Answers)
	assert.True(t, fixed.Equal(claims.StartedAt))
	assert.Equal(t, issued.ID, claims.ID)
}

func TestAttemptTokenIDsAreUnique(t *testing.T) {
	svc := NewAttemptService("secret")
	_, a, err := svc.Issue(1)
	require.NoError(t, err)
	_, b, err := svc.Issue(1)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAttemptTokenRejected(t *testing.T) {
	svc := NewAttemptService("secret")
	token, _, err := svc.Issue(2)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	cases := map[string]struct {
		token  string
		quizID uint
	}{
		"garbage":         {"not-a-token", 2},
		"empty":           {"", 2},
		"other quiz":      {token, 3},
		"bad signature":   {parts[0] + "." + parts[1] + ".AAAA", 2},
		"foreign secret":  {mustIssue(t, NewAttemptService("other"), 2), 2},
		"payload swapped": {parts[0] + "." + strings.Split(mustIssue(t, svc, 3), ".")[1] + "." + parts[2], 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Parse(tc.token, tc.quizID)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func mustIssue(t *testing.T, svc *AttemptService, quizID uint) string {
	t.Helper()
	token, _, err := svc.Issue(quizID)
	require.NoError(t, err)
	return token
}
