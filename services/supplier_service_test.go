package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"github.com/openprocure/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupSupplierServiceMocks(t *testing.T) (*SupplierService, *mock_repositories.MockSupplierRepo, *mock_repositories.MockClassificationRepo, *mock_repositories.MockQuestionnaireRepo, *mock_repositories.MockResponseRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSupplier := mock_repositories.NewMockSupplierRepo(ctrl)
	mockClassification := mock_repositories.NewMockClassificationRepo(ctrl)
	mockQuestionnaire := mock_repositories.NewMockQuestionnaireRepo(ctrl)
	mockResponse := mock_repositories.NewMockResponseRepo(ctrl)
	repos := &repositories.Repos{
		Supplier:       mockSupplier,
		Classification: mockClassification,
		Questionnaire:  mockQuestionnaire,
		Response:       mockResponse,
	}
	svc := NewSupplierService(repos)
	return svc, mockSupplier, mockClassification, mockQuestionnaire, mockResponse
}

// --------------------- GetProfile ---------------------
func TestGetSupplierProfile_NotFound(t *testing.T) {
	svc, mockSupplier, _, _, _ := setupSupplierServiceMocks(t)

	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(models.Supplier{}, gorm.ErrRecordNotFound)

	_, err := svc.GetProfile(4)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// --------------------- UpdateProfile ---------------------
func TestUpdateSupplierProfile_ReplacesCPVCodes(t *testing.T) {
	svc, mockSupplier, mockClassification, _, _ := setupSupplierServiceMocks(t)

	existing := models.Supplier{ID: 10, UserID: 4, CompanyName: "ACME"}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(existing, nil)
	mockSupplier.EXPECT().Save(gomock.Any()).Return(nil)
	codes := []models.CPVCode{{ID: 3, Code: "45000000"}}
	mockClassification.EXPECT().GetCPVByCodes([]string{"45000000"}).Return(codes, nil)
	mockSupplier.EXPECT().ReplaceCPVCodes(gomock.Any(), codes).Return(nil)

	input := dto.UpdateSupplierProfileInput{
		City:     ptrString("Cluj-Napoca"),
		CPVCodes: []string{"45000000"},
	}
	supplier, err := svc.UpdateProfile(4, input)
	assert.NoError(t, err)
	assert.Equal(t, "Cluj-Napoca", supplier.City)
	assert.Len(t, supplier.CPVCodes, 1)
}

func TestUpdateSupplierProfile_UnknownCode(t *testing.T) {
	svc, mockSupplier, mockClassification, _, _ := setupSupplierServiceMocks(t)

	existing := models.Supplier{ID: 10, UserID: 4}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(existing, nil)
	mockSupplier.EXPECT().Save(gomock.Any()).Return(nil)
	mockClassification.EXPECT().GetCPVByCodes([]string{"99999999"}).Return([]models.CPVCode{}, nil)

	input := dto.UpdateSupplierProfileInput{CPVCodes: []string{"99999999"}}
	_, err := svc.UpdateProfile(4, input)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

// --------------------- ActiveQuestionnaires ---------------------
func TestActiveQuestionnaires_Success(t *testing.T) {
	svc, mockSupplier, _, mockQuestionnaire, _ := setupSupplierServiceMocks(t)

	approved := models.Supplier{ID: 10, UserID: 4, Status: models.SupplierStatusApproved}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approved, nil)
	mockQuestionnaire.EXPECT().ListActiveForSupplier(uint(10)).Return([]models.Questionnaire{{ID: 3}}, nil)

	questionnaires, err := svc.ActiveQuestionnaires(4)
	assert.NoError(t, err)
	assert.Len(t, questionnaires, 1)
}

func TestActiveQuestionnaires_NotApproved(t *testing.T) {
	svc, mockSupplier, _, _, _ := setupSupplierServiceMocks(t)

	pending := models.Supplier{ID: 10, UserID: 4, Status: models.SupplierStatusPending}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(pending, nil)

	_, err := svc.ActiveQuestionnaires(4)
	assert.ErrorIs(t, err, ErrSupplierNotApproved)
}

// --------------------- OwnResponses ---------------------
func TestOwnResponses_Success(t *testing.T) {
	svc, mockSupplier, _, _, mockResponse := setupSupplierServiceMocks(t)

	approved := models.Supplier{ID: 10, UserID: 4, Status: models.SupplierStatusApproved}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(approved, nil)
	mockResponse.EXPECT().ListBySupplier(uint(10)).Return([]models.QuestionnaireResponse{{ID: 1}}, nil)

	responses, err := svc.OwnResponses(4)
	assert.NoError(t, err)
	assert.Len(t, responses, 1)
}
