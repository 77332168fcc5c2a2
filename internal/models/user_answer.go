package models

// UserAnswer records the choice picked for one question of a session.
// IsCorrect is copied from the choice at submission time.
type UserAnswer struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	SessionID  uint        `gorm:"not null;index" json:"session_id"`
	Session    QuizSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID uint        `gorm:"not null;index" json:"question_id"`
	Question   Question    `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	ChoiceID   uint        `gorm:"not null" json:"choice_id"`
	Choice     Choice      `gorm:"foreignKey:ChoiceID;constraint:OnDelete:CASCADE" json:"-"`
	IsCorrect  bool        `gorm:"not null;default:false" json:"is_correct"`
}
