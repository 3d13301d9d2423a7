package dto

import "time"

type QuestionInput struct {
	Text             string   `json:"text" binding:"required"`
	QuestionType     string   `json:"question_type" binding:"required,oneof=text radio checkbox dropdown multiple_choice"`
	Options          []string `json:"options"`
	RequiresDocument bool     `json:"requires_document"`
}

type CreateQuestionnaireInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	CPVCodeID   uint            `json:"cpv_code_id" binding:"required"`
	Deadline    time.Time       `json:"deadline" binding:"required"`
	IsActive    *bool           `json:"is_active"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// UpdateQuestionnaireInput replaces the question list wholesale; the handler
// never diffs individual questions.
type UpdateQuestionnaireInput struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	CPVCodeID   *uint           `json:"cpv_code_id"`
	Deadline    *time.Time      `json:"deadline"`
	IsActive    *bool           `json:"is_active"`
	Questions   []QuestionInput `json:"questions" binding:"omitempty,min=1,dive"`
}

type AnswerInput struct {
	QuestionID  uint     `json:"question_id" binding:"required"`
	AnswerText  *string  `json:"answer_text"`
	AnswerValue []string `json:"answer_value"`
	DocumentID  *uint    `json:"document_id"`
}

type SaveResponseInput struct {
	Status  string        `json:"status" binding:"required,oneof=draft submitted"`
	Answers []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}
