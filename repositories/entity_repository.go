package repositories

import (
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/models"
	"gorm.io/gorm"
)

type ProcuringEntityRepo interface {
	CreateWithUser(user *models.User, entity *models.ProcuringEntity) error
	GetByID(id uint) (models.ProcuringEntity, error)
	GetByUserID(userID uint) (models.ProcuringEntity, error)
	Save(entity *models.ProcuringEntity) error
	GetCompanyByID(id uint) (models.Company, error)
}

type DBProcuringEntityRepo struct{}

func (r *DBProcuringEntityRepo) CreateWithUser(user *models.User, entity *models.ProcuringEntity) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		entity.UserID = user.ID
		return tx.Create(entity).Error
	})
}

func (r *DBProcuringEntityRepo) GetByID(id uint) (models.ProcuringEntity, error) {
	var entity models.ProcuringEntity
	err := db.DB.Preload("User").Preload("Company").First(&entity, id).Error
	return entity, err
}

func (r *DBProcuringEntityRepo) GetByUserID(userID uint) (models.ProcuringEntity, error) {
	var entity models.ProcuringEntity
	err := db.DB.Preload("Company").Where("user_id = ?", userID).First(&entity).Error
	return entity, err
}

func (r *DBProcuringEntityRepo) Save(entity *models.ProcuringEntity) error {
	return db.DB.Save(entity).Error
}

func (r *DBProcuringEntityRepo) GetCompanyByID(id uint) (models.Company, error) {
	var company models.Company
	err := db.DB.First(&company, id).Error
	return company, err
}
