package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"github.com/openprocure/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupResponseServiceMocks(t *testing.T) (*ResponseService, *mock_repositories.MockSupplierRepo, *mock_repositories.MockQuestionnaireRepo, *mock_repositories.MockDocumentRepo, *mock_repositories.MockResponseRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSupplier := mock_repositories.NewMockSupplierRepo(ctrl)
	mockQuestionnaire := mock_repositories.NewMockQuestionnaireRepo(ctrl)
	mockDocument := mock_repositories.NewMockDocumentRepo(ctrl)
	mockResponse := mock_repositories.NewMockResponseRepo(ctrl)
	repos := &repositories.Repos{
		Supplier:      mockSupplier,
		Questionnaire: mockQuestionnaire,
		Document:      mockDocument,
		Response:      mockResponse,
	}
	svc := NewResponseService(repos)
	return svc, mockSupplier, mockQuestionnaire, mockDocument, mockResponse
}

func approvedSupplier() models.Supplier {
	return models.Supplier{ID: 10, UserID: 4, Status: models.SupplierStatusApproved}
}

func openQuestionnaire() models.Questionnaire {
	return models.Questionnaire{
		ID:        3,
		CPVCodeID: 5,
		Deadline:  time.Now().Add(7 * 24 * time.Hour),
		IsActive:  true,
		Questions: []models.Question{
			{ID: 21, QuestionnaireID: 3, QuestionType: models.QuestionTypeText},
			{ID: 22, QuestionnaireID: 3, QuestionType: models.QuestionTypeRadio, RequiresDocument: true},
		},
	}
}

// --------------------- Save ---------------------
func TestSaveResponse_SubmitSuccess(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, mockDocument, mockResponse := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(openQuestionnaire(), nil)
	mockSupplier.EXPECT().HasCPVCode(uint(10), uint(5)).Return(true, nil)
	mockDocument.EXPECT().GetByID(uint(30)).Return(models.Document{ID: 30, OwnerUserID: 4}, nil)

	now := time.Now()
	mockResponse.EXPECT().SaveWithAnswers(uint(3), uint(10), models.ResponseStatusSubmitted, gomock.Any()).DoAndReturn(
		func(questionnaireID, supplierID uint, status models.ResponseStatus, answers []models.Answer) (models.QuestionnaireResponse, error) {
			assert.Len(t, answers, 2)
			assert.Equal(t, uint(21), answers[0].QuestionID)
			assert.Equal(t, uint(30), *answers[1].DocumentID)
			return models.QuestionnaireResponse{
				ID:              1,
				QuestionnaireID: questionnaireID,
				SupplierID:      supplierID,
				Status:          status,
				SubmittedAt:     &now,
			}, nil
		})

	docID := uint(30)
	input := dto.SaveResponseInput{
		Status: "submitted",
		Answers: []dto.AnswerInput{
			{QuestionID: 21, AnswerText: ptrString("15 years of road works")},
			{QuestionID: 22, AnswerValue: []string{"yes"}, DocumentID: &docID},
		},
	}
	resp, err := svc.Save(4, 3, input)
	assert.NoError(t, err)
	assert.Equal(t, models.ResponseStatusSubmitted, resp.Status)
	assert.NotNil(t, resp.SubmittedAt)
}

func TestSaveResponse_SubmittedNotDemotedToDraft(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, _, mockResponse := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(openQuestionnaire(), nil)
	mockSupplier.EXPECT().HasCPVCode(uint(10), uint(5)).Return(true, nil)
	mockResponse.EXPECT().SaveWithAnswers(uint(3), uint(10), models.ResponseStatusDraft, gomock.Any()).
		Return(models.QuestionnaireResponse{}, repositories.ErrResponseSubmitted)

	input := dto.SaveResponseInput{
		Status:  "draft",
		Answers: []dto.AnswerInput{{QuestionID: 21, AnswerText: ptrString("revised answer")}},
	}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrResponseSubmitted)
}

func TestSaveResponse_NotApproved(t *testing.T) {
	svc, mockSupplier, _, _, _ := setupResponseServiceMocks(t)

	pending := models.Supplier{ID: 10, UserID: 4, Status: models.SupplierStatusPending}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(pending, nil)

	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 21}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrSupplierNotApproved)
}

func TestSaveResponse_InactiveQuestionnaire(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, _, _ := setupResponseServiceMocks(t)

	q := openQuestionnaire()
	q.IsActive = false
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(q, nil)

	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 21}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrQuestionnaireClosed)
}

func TestSaveResponse_PastDeadline(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, _, _ := setupResponseServiceMocks(t)

	q := openQuestionnaire()
	q.Deadline = time.Now().Add(-48 * time.Hour)
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(q, nil)

	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 21}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrQuestionnaireClosed)
}

func TestSaveResponse_CPVCodeNotHeld(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, _, _ := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(openQuestionnaire(), nil)
	mockSupplier.EXPECT().HasCPVCode(uint(10), uint(5)).Return(false, nil)

	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 21}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrCPVCodeNotHeld)
}

func TestSaveResponse_UnknownQuestion(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, _, _ := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(openQuestionnaire(), nil)
	mockSupplier.EXPECT().HasCPVCode(uint(10), uint(5)).Return(true, nil)

	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 99}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestSaveResponse_DocumentRequired(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, _, _ := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(openQuestionnaire(), nil)
	mockSupplier.EXPECT().HasCPVCode(uint(10), uint(5)).Return(true, nil)

	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 22, AnswerValue: []string{"yes"}}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrDocumentRequired)
}

func TestSaveResponse_ForeignDocument(t *testing.T) {
	svc, mockSupplier, mockQuestionnaire, mockDocument, _ := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockQuestionnaire.EXPECT().GetByID(uint(3)).Return(openQuestionnaire(), nil)
	mockSupplier.EXPECT().HasCPVCode(uint(10), uint(5)).Return(true, nil)
	mockDocument.EXPECT().GetByID(uint(30)).Return(models.Document{ID: 30, OwnerUserID: 999}, nil)

	docID := uint(30)
	input := dto.SaveResponseInput{Status: "draft", Answers: []dto.AnswerInput{{QuestionID: 22, DocumentID: &docID}}}
	_, err := svc.Save(4, 3, input)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

// --------------------- GetOwn ---------------------
func TestGetOwnResponse_Success(t *testing.T) {
	svc, mockSupplier, _, _, mockResponse := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockResponse.EXPECT().GetByQuestionnaireAndSupplier(uint(3), uint(10)).Return(
		models.QuestionnaireResponse{ID: 1, QuestionnaireID: 3, SupplierID: 10}, nil)

	resp, err := svc.GetOwn(4, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
}

func TestGetOwnResponse_NotFound(t *testing.T) {
	svc, mockSupplier, _, _, mockResponse := setupResponseServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approvedSupplier(), nil)
	mockResponse.EXPECT().GetByQuestionnaireAndSupplier(uint(3), uint(10)).Return(
		models.QuestionnaireResponse{}, gorm.ErrRecordNotFound)

	_, err := svc.GetOwn(4, 3)
	assert.ErrorIs(t, err, ErrResponseNotFound)
}
