package services

import (
	"encoding/json"
	"errors"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"gorm.io/datatypes"
)

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrCPVCodeNotFound       = errors.New("cpv code not found")
	ErrOptionsRequired       = errors.New("options are required for choice question types")
	ErrOptionsNotAllowed     = errors.New("options are only allowed for choice question types")
	ErrHasSubmittedResponses = errors.New("questionnaire has submitted responses")
)

type QuestionnaireService struct {
	Repos        *repositories.Repos
	Notification *NotificationService
}

func NewQuestionnaireService(repos *repositories.Repos, notification *NotificationService) *QuestionnaireService {
	return &QuestionnaireService{Repos: repos, Notification: notification}
}

func buildQuestions(inputs []dto.QuestionInput) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(inputs))
	for i, input := range inputs {
		questionType := models.QuestionType(input.QuestionType)

		var options datatypes.JSON
		if questionType.IsChoiceType() {
			if len(input.Options) == 0 {
				return nil, ErrOptionsRequired
			}
			raw, err := json.Marshal(input.Options)
			if err != nil {
				return nil, err
			}
			options = datatypes.JSON(raw)
		} else if len(input.Options) > 0 {
			return nil, ErrOptionsNotAllowed
		}

		questions = append(questions, models.Question{
			Text:             input.Text,
			QuestionType:     questionType,
			Options:          options,
			RequiresDocument: input.RequiresDocument,
			Position:         i,
		})
	}
	return questions, nil
}

// Create stores the questionnaire with its ordered question list and fans out
// notifications to matching suppliers.
func (s *QuestionnaireService) Create(userID uint, input dto.CreateQuestionnaireInput) (models.Questionnaire, error) {
	entity, err := s.Repos.Entity.GetByUserID(userID)
	if err != nil {
		return models.Questionnaire{}, ErrProfileNotFound
	}

	if _, err := s.Repos.Classification.GetCPVByID(input.CPVCodeID); err != nil {
		return models.Questionnaire{}, ErrCPVCodeNotFound
	}

	questions, err := buildQuestions(input.Questions)
	if err != nil {
		return models.Questionnaire{}, err
	}

	q := models.Questionnaire{
		ProcuringEntityID: entity.ID,
		CPVCodeID:         input.CPVCodeID,
		Title:             input.Title,
		Description:       input.Description,
		Deadline:          input.Deadline,
		IsActive:          true,
		Questions:         questions,
	}
	if input.IsActive != nil {
		q.IsActive = *input.IsActive
	}

	if err := s.Repos.Questionnaire.Create(&q); err != nil {
		return models.Questionnaire{}, err
	}

	if q.IsActive {
		s.Notification.QuestionnairePublished(q)
	}
	return q, nil
}

func (s *QuestionnaireService) getOwned(userID, questionnaireID uint) (models.Questionnaire, error) {
	entity, err := s.Repos.Entity.GetByUserID(userID)
	if err != nil {
		return models.Questionnaire{}, ErrProfileNotFound
	}
	q, err := s.Repos.Questionnaire.GetByID(questionnaireID)
	if err != nil {
		return models.Questionnaire{}, ErrQuestionnaireNotFound
	}
	if q.ProcuringEntityID != entity.ID {
		// Ownership mismatch reads as not-found to the caller.
		return models.Questionnaire{}, ErrQuestionnaireNotFound
	}
	return q, nil
}

func (s *QuestionnaireService) Get(userID, questionnaireID uint) (models.Questionnaire, error) {
	return s.getOwned(userID, questionnaireID)
}

func (s *QuestionnaireService) ListOwn(userID uint) ([]models.Questionnaire, error) {
	entity, err := s.Repos.Entity.GetByUserID(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return s.Repos.Questionnaire.ListByEntity(entity.ID)
}

// Update saves metadata and, when a question list is supplied, replaces the
// existing questions wholesale. Replacement is refused once any submitted
// response exists, since answers reference the question rows.
func (s *QuestionnaireService) Update(userID, questionnaireID uint, input dto.UpdateQuestionnaireInput) (models.Questionnaire, error) {
	q, err := s.getOwned(userID, questionnaireID)
	if err != nil {
		return models.Questionnaire{}, err
	}

	if input.Title != nil {
		q.Title = *input.Title
	}
	if input.Description != nil {
		q.Description = *input.Description
	}
	if input.CPVCodeID != nil {
		if _, err := s.Repos.Classification.GetCPVByID(*input.CPVCodeID); err != nil {
			return models.Questionnaire{}, ErrCPVCodeNotFound
		}
		q.CPVCodeID = *input.CPVCodeID
	}
	if input.Deadline != nil {
		q.Deadline = *input.Deadline
	}
	if input.IsActive != nil {
		q.IsActive = *input.IsActive
	}

	var questions []models.Question
	if input.Questions != nil {
		hasSubmitted, err := s.Repos.Questionnaire.HasSubmittedResponses(q.ID)
		if err != nil {
			return models.Questionnaire{}, err
		}
		if hasSubmitted {
			return models.Questionnaire{}, ErrHasSubmittedResponses
		}
		questions, err = buildQuestions(input.Questions)
		if err != nil {
			return models.Questionnaire{}, err
		}
	}

	if err := s.Repos.Questionnaire.UpdateWithQuestions(&q, questions); err != nil {
		return models.Questionnaire{}, err
	}

	updated, err := s.Repos.Questionnaire.GetByID(q.ID)
	if err != nil {
		return models.Questionnaire{}, err
	}

	if updated.IsActive {
		s.Notification.QuestionnairePublished(updated)
	}
	return updated, nil
}

// Delete is refused while any submitted response exists; otherwise it
// cascades through questions and draft responses.
func (s *QuestionnaireService) Delete(userID, questionnaireID uint) error {
	q, err := s.getOwned(userID, questionnaireID)
	if err != nil {
		return err
	}

	hasSubmitted, err := s.Repos.Questionnaire.HasSubmittedResponses(q.ID)
	if err != nil {
		return err
	}
	if hasSubmitted {
		return ErrHasSubmittedResponses
	}

	return s.Repos.Questionnaire.Delete(q.ID)
}

// SubmittedResponses lists submitted responses to one of the entity's own
// questionnaires. Drafts stay private to their supplier.
func (s *QuestionnaireService) SubmittedResponses(userID, questionnaireID uint) ([]models.QuestionnaireResponse, error) {
	q, err := s.getOwned(userID, questionnaireID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Response.ListSubmittedByQuestionnaire(q.ID)
}
