package models

import "time"

type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuizID        uint      `gorm:"not null;index" json:"quiz_id"`
	Quiz          Quiz      `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	QuestionOrder int       `gorm:"not null;default:1" json:"question_order"`
	CreatedAt     time.Time `json:"created_at"`
}
