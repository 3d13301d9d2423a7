package models

import (
	"time"

	"gorm.io/datatypes"
)

type ResponseStatus string

const (
	ResponseStatusDraft     ResponseStatus = "draft"
	ResponseStatusSubmitted ResponseStatus = "submitted"
)

// QuestionnaireResponse holds one supplier's answer set for one questionnaire.
// There is at most one row per (questionnaire, supplier) pair.
type QuestionnaireResponse struct {
	ID              uint           `gorm:"primaryKey;column:id" json:"id"`
	QuestionnaireID uint           `gorm:"not null;uniqueIndex:idx_response_questionnaire_supplier" json:"questionnaire_id"`
	SupplierID      uint           `gorm:"not null;uniqueIndex:idx_response_questionnaire_supplier" json:"supplier_id"`
	Status          ResponseStatus `gorm:"type:response_status;default:'draft';not null" json:"status"`
	SubmittedAt     *time.Time     `json:"submitted_at,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Questionnaire Questionnaire `gorm:"foreignKey:QuestionnaireID" json:"questionnaire,omitempty"`
	Supplier      Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Answers       []Answer      `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

type Answer struct {
	ID          uint           `gorm:"primaryKey;column:id" json:"id"`
	ResponseID  uint           `gorm:"not null;uniqueIndex:idx_answer_response_question" json:"response_id"`
	QuestionID  uint           `gorm:"not null;uniqueIndex:idx_answer_response_question" json:"question_id"`
	AnswerText  *string        `gorm:"type:text" json:"answer_text,omitempty"`
	AnswerValue datatypes.JSON `gorm:"type:jsonb" json:"answer_value,omitempty"` // selections for choice types
	DocumentID  *uint          `json:"document_id,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Question Question  `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Document *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
}
