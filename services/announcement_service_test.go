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
func setupAnnouncementServiceMocks(t *testing.T) (*AnnouncementService, *mock_repositories.MockAnnouncementRepo, *mock_repositories.MockClassificationRepo, *mock_repositories.MockSupplierRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAnnouncement := mock_repositories.NewMockAnnouncementRepo(ctrl)
	mockClassification := mock_repositories.NewMockClassificationRepo(ctrl)
	mockSupplier := mock_repositories.NewMockSupplierRepo(ctrl)
	repos := &repositories.Repos{
		Announcement:   mockAnnouncement,
		Classification: mockClassification,
		Supplier:       mockSupplier,
	}
	svc := NewAnnouncementService(repos)
	return svc, mockAnnouncement, mockClassification, mockSupplier
}

// --------------------- Create ---------------------
func TestCreateAnnouncement_DefaultsToAllAudience(t *testing.T) {
	svc, mockAnnouncement, _, _ := setupAnnouncementServiceMocks(t)

	mockAnnouncement.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Announcement) error {
		a.ID = 6
		return nil
	})

	a, err := svc.Create(1, dto.CreateAnnouncementInput{Title: "Maintenance window", Body: "Portal down on Saturday"})
	assert.NoError(t, err)
	assert.Equal(t, models.AudienceAll, a.Audience)
	assert.Equal(t, uint(1), a.CreatedByID)
}

func TestCreateAnnouncement_UnknownCPVCode(t *testing.T) {
	svc, _, mockClassification, _ := setupAnnouncementServiceMocks(t)

	mockClassification.EXPECT().GetCPVByID(uint(99)).Return(models.CPVCode{}, gorm.ErrRecordNotFound)

	cpvID := uint(99)
	_, err := svc.Create(1, dto.CreateAnnouncementInput{Title: "Scoped", Body: "Body", CPVCodeID: &cpvID})
	assert.ErrorIs(t, err, ErrCPVCodeNotFound)
}

// --------------------- Update / Delete ---------------------
func TestUpdateAnnouncement_NotFound(t *testing.T) {
	svc, mockAnnouncement, _, _ := setupAnnouncementServiceMocks(t)

	mockAnnouncement.EXPECT().GetByID(uint(6)).Return(models.Announcement{}, gorm.ErrRecordNotFound)

	_, err := svc.Update(6, dto.UpdateAnnouncementInput{Title: ptrString("New")})
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestDeleteAnnouncement_Success(t *testing.T) {
	svc, mockAnnouncement, _, _ := setupAnnouncementServiceMocks(t)

	mockAnnouncement.EXPECT().GetByID(uint(6)).Return(models.Announcement{ID: 6}, nil)
	mockAnnouncement.EXPECT().Delete(uint(6)).Return(nil)

	err := svc.Delete(6)
	assert.NoError(t, err)
}

// --------------------- ListForUser ---------------------
func TestListAnnouncementsForSupplier_ScopedByCPVCodes(t *testing.T) {
	svc, mockAnnouncement, _, mockSupplier := setupAnnouncementServiceMocks(t)

	supplier := models.Supplier{ID: 10, UserID: 4, CPVCodes: []models.CPVCode{{ID: 3}, {ID: 5}}}
	mockSupplier.EXPECT().GetByUserID(uint(4)).Return(supplier, nil)
	mockAnnouncement.EXPECT().ListForAudience(
		[]models.AnnouncementAudience{models.AudienceAll, models.AudienceSuppliers},
		[]uint{3, 5},
	).Return([]models.Announcement{{ID: 6}}, nil)

	announcements, err := svc.ListForUser(4, string(models.UserRoleSupplier))
	assert.NoError(t, err)
	assert.Len(t, announcements, 1)
}

func TestListAnnouncementsForEntity(t *testing.T) {
	svc, mockAnnouncement, _, _ := setupAnnouncementServiceMocks(t)

	mockAnnouncement.EXPECT().ListForAudience(
		[]models.AnnouncementAudience{models.AudienceAll, models.AudienceProcuringEntities},
		gomock.Nil(),
	).Return([]models.Announcement{}, nil)

	_, err := svc.ListForUser(2, string(models.UserRoleProcuringEntity))
	assert.NoError(t, err)
}

func TestListAnnouncementsForAdmin_SeesEverything(t *testing.T) {
	svc, mockAnnouncement, _, _ := setupAnnouncementServiceMocks(t)

	mockAnnouncement.EXPECT().ListAll().Return([]models.Announcement{{ID: 6}, {ID: 7}}, nil)

	announcements, err := svc.ListForUser(1, string(models.UserRoleAdmin))
	assert.NoError(t, err)
	assert.Len(t, announcements, 2)
}
