package repositories

import (
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/models"
)

type AnnouncementRepo interface {
	Create(a *models.Announcement) error
	GetByID(id uint) (models.Announcement, error)
	Save(a *models.Announcement) error
	Delete(id uint) error
	ListAll() ([]models.Announcement, error)
	ListForAudience(audiences []models.AnnouncementAudience, cpvCodeIDs []uint) ([]models.Announcement, error)
}

type DBAnnouncementRepo struct{}

func (r *DBAnnouncementRepo) Create(a *models.Announcement) error {
	return db.DB.Create(a).Error
}

func (r *DBAnnouncementRepo) GetByID(id uint) (models.Announcement, error) {
	var a models.Announcement
	err := db.DB.Preload("CPVCode").First(&a, id).Error
	return a, err
}

func (r *DBAnnouncementRepo) Save(a *models.Announcement) error {
	return db.DB.Save(a).Error
}

func (r *DBAnnouncementRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Announcement{}, id).Error
}

func (r *DBAnnouncementRepo) ListAll() ([]models.Announcement, error) {
	var items []models.Announcement
	err := db.DB.Preload("CPVCode").Order("created_at DESC").Find(&items).Error
	return items, err
}

// ListForAudience filters by audience and, for CPV-scoped announcements,
// keeps only those whose scope is among the given codes. Unscoped
// announcements always pass.
func (r *DBAnnouncementRepo) ListForAudience(audiences []models.AnnouncementAudience, cpvCodeIDs []uint) ([]models.Announcement, error) {
	var items []models.Announcement
	query := db.DB.Preload("CPVCode").Where("audience IN ?", audiences)
	if cpvCodeIDs != nil {
		query = query.Where("cpv_code_id IS NULL OR cpv_code_id IN ?", cpvCodeIDs)
	}
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}
