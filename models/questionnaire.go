package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeRadio          QuestionType = "radio"
	QuestionTypeCheckbox       QuestionType = "checkbox"
	QuestionTypeDropdown       QuestionType = "dropdown"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
)

// IsChoiceType reports whether the question type carries an options list.
func (t QuestionType) IsChoiceType() bool {
	switch t {
	case QuestionTypeRadio, QuestionTypeCheckbox, QuestionTypeDropdown, QuestionTypeMultipleChoice:
		return true
	}
	return false
}

type Questionnaire struct {
	ID                uint      `gorm:"primaryKey;column:id" json:"id"`
	ProcuringEntityID uint      `gorm:"not null;index" json:"procuring_entity_id"`
	CPVCodeID         uint      `gorm:"not null;index" json:"cpv_code_id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	Deadline          time.Time `gorm:"not null" json:"deadline"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	ProcuringEntity ProcuringEntity `gorm:"foreignKey:ProcuringEntityID" json:"procuring_entity,omitempty"`
	CPVCode         CPVCode         `gorm:"foreignKey:CPVCodeID" json:"cpv_code,omitempty"`
	Questions       []Question      `gorm:"foreignKey:QuestionnaireID" json:"questions,omitempty"`
}

type Question struct {
	ID               uint           `gorm:"primaryKey;column:id" json:"id"`
	QuestionnaireID  uint           `gorm:"not null;index" json:"questionnaire_id"`
	Text             string         `gorm:"type:text;not null" json:"text"`
	QuestionType     QuestionType   `gorm:"type:question_type;not null" json:"question_type"`
	Options          datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"` // null unless choice type
	RequiresDocument bool           `gorm:"default:false" json:"requires_document"`
	Position         int            `gorm:"not null;default:0" json:"position"`
}
