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
func setupAdminServiceMocks(t *testing.T) (*AdminService, *mock_repositories.MockUserRepo, *mock_repositories.MockSupplierRepo, *mock_repositories.MockProcuringEntityRepo, *mock_repositories.MockClassificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockSupplier := mock_repositories.NewMockSupplierRepo(ctrl)
	mockEntity := mock_repositories.NewMockProcuringEntityRepo(ctrl)
	mockClassification := mock_repositories.NewMockClassificationRepo(ctrl)
	repos := &repositories.Repos{
		User:           mockUser,
		Supplier:       mockSupplier,
		Entity:         mockEntity,
		Classification: mockClassification,
	}
	svc := NewAdminService(repos, NewNotificationService(repos, noopSender{}))
	return svc, mockUser, mockSupplier, mockEntity, mockClassification
}

// --------------------- CreateUser ---------------------
func TestCreateUser_AdminSuccess(t *testing.T) {
	svc, mockUser, _, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("admin@portal.test").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.ID = 1
		return nil
	})

	input := dto.CreateUserInput{Email: "admin@portal.test", Password: "password123", Role: string(models.UserRoleAdmin)}
	user, err := svc.CreateUser(input)
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)
	assert.True(t, user.IsActive)
}

func TestCreateUser_SupplierWithProfile(t *testing.T) {
	svc, mockUser, mockSupplier, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("supplier@acme.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockSupplier.EXPECT().CreateWithUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(user *models.User, supplier *models.Supplier) error {
			assert.Equal(t, "ACME", supplier.CompanyName)
			assert.Equal(t, models.SupplierStatusPending, supplier.Status)
			return nil
		})

	input := dto.CreateUserInput{
		Email:       "supplier@acme.com",
		Password:    "password123",
		Role:        string(models.UserRoleSupplier),
		CompanyName: "ACME",
	}
	_, err := svc.CreateUser(input)
	assert.NoError(t, err)
}

func TestCreateUser_SupplierMissingCompanyName(t *testing.T) {
	svc, mockUser, _, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("supplier@acme.com").Return(models.User{}, gorm.ErrRecordNotFound)

	input := dto.CreateUserInput{Email: "supplier@acme.com", Password: "password123", Role: string(models.UserRoleSupplier)}
	_, err := svc.CreateUser(input)
	assert.ErrorIs(t, err, ErrMissingProfileName)
}

func TestCreateUser_EntityWithProfile(t *testing.T) {
	svc, mockUser, _, mockEntity, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("entity@city.gov").Return(models.User{}, gorm.ErrRecordNotFound)
	mockEntity.EXPECT().CreateWithUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(user *models.User, entity *models.ProcuringEntity) error {
			assert.Equal(t, "City Hall", entity.EntityName)
			return nil
		})

	input := dto.CreateUserInput{
		Email:      "entity@city.gov",
		Password:   "password123",
		Role:       string(models.UserRoleProcuringEntity),
		EntityName: "City Hall",
	}
	_, err := svc.CreateUser(input)
	assert.NoError(t, err)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	svc, mockUser, _, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("taken@portal.test").Return(models.User{ID: 1}, nil)

	input := dto.CreateUserInput{Email: "taken@portal.test", Password: "password123", Role: string(models.UserRoleAdmin)}
	_, err := svc.CreateUser(input)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// --------------------- SetUserActive ---------------------
func TestSetUserActive_Deactivate(t *testing.T) {
	svc, mockUser, _, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(2)).Return(models.User{ID: 2, IsActive: true}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.False(t, u.IsActive)
		return nil
	})

	user, err := svc.SetUserActive(2, false)
	assert.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestSetUserActive_NotFound(t *testing.T) {
	svc, mockUser, _, _, _ := setupAdminServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.SetUserActive(99, false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- ApproveSupplier ---------------------
func TestApproveSupplier_Success(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	pending := models.Supplier{
		ID:          10,
		CompanyName: "ACME",
		Status:      models.SupplierStatusPending,
		User:        models.User{ID: 4, Email: "contact@acme.com"},
	}
	mockSupplier.EXPECT().GetByID(uint(10)).Return(pending, nil)
	mockSupplier.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *models.Supplier) error {
		assert.Equal(t, models.SupplierStatusApproved, s.Status)
		assert.Equal(t, uint(1), *s.ApprovedByID)
		return nil
	})

	supplier, err := svc.ApproveSupplier(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, models.SupplierStatusApproved, supplier.Status)
}

func TestApproveSupplier_NotPending(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	approved := models.Supplier{ID: 10, Status: models.SupplierStatusApproved}
	mockSupplier.EXPECT().GetByID(uint(10)).Return(approved, nil)

	_, err := svc.ApproveSupplier(1, 10)
	assert.ErrorIs(t, err, ErrSupplierNotPending)
}

func TestApproveSupplier_NotFound(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	mockSupplier.EXPECT().GetByID(uint(99)).Return(models.Supplier{}, gorm.ErrRecordNotFound)

	_, err := svc.ApproveSupplier(1, 99)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

// --------------------- RejectSupplier ---------------------
func TestRejectSupplier_Success(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	pending := models.Supplier{
		ID:          10,
		CompanyName: "ACME",
		Status:      models.SupplierStatusPending,
		User:        models.User{ID: 4, Email: "contact@acme.com"},
	}
	mockSupplier.EXPECT().GetByID(uint(10)).Return(pending, nil)
	mockSupplier.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *models.Supplier) error {
		assert.Equal(t, models.SupplierStatusRejected, s.Status)
		assert.Equal(t, "incomplete registration documents", *s.RejectionReason)
		return nil
	})

	supplier, err := svc.RejectSupplier(10, "incomplete registration documents")
	assert.NoError(t, err)
	assert.Equal(t, models.SupplierStatusRejected, supplier.Status)
}

func TestRejectSupplier_NotPending(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	rejected := models.Supplier{ID: 10, Status: models.SupplierStatusRejected}
	mockSupplier.EXPECT().GetByID(uint(10)).Return(rejected, nil)

	_, err := svc.RejectSupplier(10, "again")
	assert.ErrorIs(t, err, ErrSupplierNotPending)
}

// --------------------- ReopenSupplier ---------------------
func TestReopenSupplier_Success(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	reason := "incomplete registration documents"
	rejected := models.Supplier{ID: 10, Status: models.SupplierStatusRejected, RejectionReason: &reason}
	mockSupplier.EXPECT().GetByID(uint(10)).Return(rejected, nil)
	mockSupplier.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *models.Supplier) error {
		assert.Equal(t, models.SupplierStatusPending, s.Status)
		assert.Nil(t, s.RejectionReason)
		return nil
	})

	supplier, err := svc.ReopenSupplier(10)
	assert.NoError(t, err)
	assert.Equal(t, models.SupplierStatusPending, supplier.Status)
}

func TestReopenSupplier_NotRejected(t *testing.T) {
	svc, _, mockSupplier, _, _ := setupAdminServiceMocks(t)

	pending := models.Supplier{ID: 10, Status: models.SupplierStatusPending}
	mockSupplier.EXPECT().GetByID(uint(10)).Return(pending, nil)

	_, err := svc.ReopenSupplier(10)
	assert.ErrorIs(t, err, ErrSupplierNotRejected)
}

// --------------------- Classification codes ---------------------
func TestCreateCPVCode_Success(t *testing.T) {
	svc, _, _, _, mockClassification := setupAdminServiceMocks(t)

	mockClassification.EXPECT().GetCPVByCodes([]string{"45000000"}).Return([]models.CPVCode{}, nil)
	mockClassification.EXPECT().CreateCPV(gomock.Any()).DoAndReturn(func(c *models.CPVCode) error {
		c.ID = 3
		return nil
	})

	code, err := svc.CreateCPVCode(dto.CreateCodeInput{Code: "45000000", Description: "Construction work"})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), code.ID)
}

func TestCreateCPVCode_Taken(t *testing.T) {
	svc, _, _, _, mockClassification := setupAdminServiceMocks(t)

	mockClassification.EXPECT().GetCPVByCodes([]string{"45000000"}).Return([]models.CPVCode{{ID: 3}}, nil)

	_, err := svc.CreateCPVCode(dto.CreateCodeInput{Code: "45000000"})
	assert.ErrorIs(t, err, ErrCodeTaken)
}

func TestDeleteCPVCode_InUse(t *testing.T) {
	svc, _, _, _, mockClassification := setupAdminServiceMocks(t)

	mockClassification.EXPECT().CPVInUse(uint(3)).Return(true, nil)

	err := svc.DeleteCPVCode(3)
	assert.ErrorIs(t, err, ErrCodeInUse)
}

func TestDeleteNUTSCode_Success(t *testing.T) {
	svc, _, _, _, mockClassification := setupAdminServiceMocks(t)

	mockClassification.EXPECT().NUTSInUse(uint(5)).Return(false, nil)
	mockClassification.EXPECT().DeleteNUTS(uint(5)).Return(nil)

	err := svc.DeleteNUTSCode(5)
	assert.NoError(t, err)
}
