package models

type Choice struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	QuestionID  uint     `gorm:"not null;index" json:"question_id"`
	Question    Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	ChoiceText  string   `gorm:"size:500;not null" json:"choice_text"`
	IsCorrect   bool     `gorm:"not null;default:false" json:"is_correct"`
	ChoiceOrder int      `gorm:"not null;default:1" json:"choice_order"`
}
