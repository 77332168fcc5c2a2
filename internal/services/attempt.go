package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AttemptClaims is the in-progress state of one quiz attempt. It travels
// with the client as a signed token instead of living in a server session.
type AttemptClaims struct {
	QuizID    uint          `json:"quiz_id"`
	Cursor    int           `json:"cursor"`
	Answers   map[uint]uint `json:"answers"`
	StartedAt time.Time     `json:"started_at"`
	jwt.RegisteredClaims
}

type AttemptService struct {
	secret []byte
	now    func() time.Time
}

func NewAttemptService(secret string) *AttemptService {
	return &AttemptService{secret: []byte(secret), now: time.Now}
}

func (s *AttemptService) Issue(quizID uint) (string, *AttemptClaims, error) {
	now := s.now().UTC()
	claims := &AttemptClaims{
		QuizID:    quizID,
		Cursor:    0,
		Answers:   map[uint]uint{},
		StartedAt: now,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  strconv.FormatUint(uint64(quizID), 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	token, err := s.Sign(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

func (s *AttemptService) Sign(claims *AttemptClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the token signature and that it was issued for quizID.
func (s *AttemptService) Parse(tokenString string, quizID uint) (*AttemptClaims, error) {
	claims := &AttemptClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid attempt token", ErrValidation)
	}

	if claims.QuizID != quizID {
		return nil, fmt.Errorf("%w: attempt token belongs to another quiz", ErrValidation)
	}
	if claims.Answers == nil {
		claims.Answers = map[uint]uint{}
	}
	return claims, nil
}
