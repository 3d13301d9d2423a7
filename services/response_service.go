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
	ErrQuestionnaireClosed = errors.New("questionnaire is closed")
	ErrCPVCodeNotHeld      = errors.New("supplier does not hold the questionnaire's cpv code")
	ErrUnknownQuestion     = errors.New("answer references a question outside the questionnaire")
	ErrDocumentRequired    = errors.New("question requires a document")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrResponseNotFound    = errors.New("response not found")

	// ErrResponseSubmitted surfaces the repository guard against demoting a
	// submitted response back to draft.
	ErrResponseSubmitted = repositories.ErrResponseSubmitted
)

type ResponseService struct {
	Repos *repositories.Repos
}

func NewResponseService(repos *repositories.Repos) *ResponseService {
	return &ResponseService{Repos: repos}
}

// Save upserts the supplier's response to a questionnaire. Preconditions:
// approved supplier, active questionnaire with an unreached deadline, and the
// questionnaire's CPV code among the supplier's saved codes. Saving with
// status=submitted stamps SubmittedAt; resubmission refreshes it. A submitted
// response never drops back to draft.
func (s *ResponseService) Save(userID, questionnaireID uint, input dto.SaveResponseInput) (models.QuestionnaireResponse, error) {
	supplier, err := s.Repos.Supplier.GetByUserID(userID)
	if err != nil {
		return models.QuestionnaireResponse{}, ErrProfileNotFound
	}
	if supplier.Status != models.SupplierStatusApproved {
		return models.QuestionnaireResponse{}, ErrSupplierNotApproved
	}

	q, err := s.Repos.Questionnaire.GetByID(questionnaireID)
	if err != nil {
		return models.QuestionnaireResponse{}, ErrQuestionnaireNotFound
	}
	if !q.IsActive || q.Deadline.Before(repositories.StartOfToday()) {
		return models.QuestionnaireResponse{}, ErrQuestionnaireClosed
	}

	holdsCode, err := s.Repos.Supplier.HasCPVCode(supplier.ID, q.CPVCodeID)
	if err != nil {
		return models.QuestionnaireResponse{}, err
	}
	if !holdsCode {
		return models.QuestionnaireResponse{}, ErrCPVCodeNotHeld
	}

	questionsByID := make(map[uint]models.Question, len(q.Questions))
	for _, question := range q.Questions {
		questionsByID[question.ID] = question
	}

	answers := make([]models.Answer, 0, len(input.Answers))
	for _, answerInput := range input.Answers {
		question, ok := questionsByID[answerInput.QuestionID]
		if !ok {
			return models.QuestionnaireResponse{}, ErrUnknownQuestion
		}

		var documentID *uint
		if answerInput.DocumentID != nil {
			doc, err := s.Repos.Document.GetByID(*answerInput.DocumentID)
			if err != nil || doc.OwnerUserID != userID {
				return models.QuestionnaireResponse{}, ErrDocumentNotFound
			}
			documentID = answerInput.DocumentID
		}
		if question.RequiresDocument && documentID == nil {
			return models.QuestionnaireResponse{}, ErrDocumentRequired
		}

		var answerValue datatypes.JSON
		if len(answerInput.AnswerValue) > 0 {
			raw, err := json.Marshal(answerInput.AnswerValue)
			if err != nil {
				return models.QuestionnaireResponse{}, err
			}
			answerValue = datatypes.JSON(raw)
		}

		answers = append(answers, models.Answer{
			QuestionID:  answerInput.QuestionID,
			AnswerText:  answerInput.AnswerText,
			AnswerValue: answerValue,
			DocumentID:  documentID,
		})
	}

	return s.Repos.Response.SaveWithAnswers(q.ID, supplier.ID, models.ResponseStatus(input.Status), answers)
}

// GetOwn stays available to the supplier even after the questionnaire expires.
func (s *ResponseService) GetOwn(userID, questionnaireID uint) (models.QuestionnaireResponse, error) {
	supplier, err := s.Repos.Supplier.GetByUserID(userID)
	if err != nil {
		return models.QuestionnaireResponse{}, ErrProfileNotFound
	}
	resp, err := s.Repos.Response.GetByQuestionnaireAndSupplier(questionnaireID, supplier.ID)
	if err != nil {
		return models.QuestionnaireResponse{}, ErrResponseNotFound
	}
	return resp, nil
}
