package repositories

import (
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/models"
)

type DocumentRepo interface {
	Create(doc *models.Document) error
	GetByID(id uint) (models.Document, error)
	ListByOwner(ownerUserID uint) ([]models.Document, error)
	Delete(id uint) error
	InUse(id uint) (bool, error)
}

type DBDocumentRepo struct{}

func (r *DBDocumentRepo) Create(doc *models.Document) error {
	return db.DB.Create(doc).Error
}

func (r *DBDocumentRepo) GetByID(id uint) (models.Document, error) {
	var doc models.Document
	err := db.DB.First(&doc, id).Error
	return doc, err
}

func (r *DBDocumentRepo) ListByOwner(ownerUserID uint) ([]models.Document, error) {
	var docs []models.Document
	err := db.DB.Where("owner_user_id = ?", ownerUserID).Order("id").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Document{}, id).Error
}

// InUse reports whether any answer still references the document.
func (r *DBDocumentRepo) InUse(id uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Answer{}).Where("document_id = ?", id).Count(&count).Error
	return count > 0, err
}
