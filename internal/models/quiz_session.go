package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const AnonymousUser = "Anonymous"

// QuizSession is one completed attempt at a quiz. Rows are written once at
// submission and never updated afterwards.
type QuizSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	QuizID         uint      `gorm:"not null;index" json:"quiz_id"`
	Quiz           Quiz      `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	UserName       string    `gorm:"size:100" json:"user_name"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Percentage returns score/total*100 rounded half-to-even at two places,
// or 0 for a session without questions.
func (s QuizSession) Percentage() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(s.Score)).
		Div(decimal.NewFromInt(int64(s.TotalQuestions))).
		Mul(decimal.NewFromInt(100)).
		RoundBank(2).
		InexactFloat64()
}
