package repositories

import (
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/models"
)

type ClassificationRepo interface {
	CreateCPV(code *models.CPVCode) error
	ListCPV() ([]models.CPVCode, error)
	GetCPVByID(id uint) (models.CPVCode, error)
	GetCPVByCodes(codes []string) ([]models.CPVCode, error)
	DeleteCPV(id uint) error
	CPVInUse(id uint) (bool, error)

	CreateNUTS(code *models.NUTSCode) error
	ListNUTS() ([]models.NUTSCode, error)
	GetNUTSByCodes(codes []string) ([]models.NUTSCode, error)
	DeleteNUTS(id uint) error
	NUTSInUse(id uint) (bool, error)
}

type DBClassificationRepo struct{}

func (r *DBClassificationRepo) CreateCPV(code *models.CPVCode) error {
	return db.DB.Create(code).Error
}

func (r *DBClassificationRepo) ListCPV() ([]models.CPVCode, error) {
	var codes []models.CPVCode
	err := db.DB.Order("code").Find(&codes).Error
	return codes, err
}

func (r *DBClassificationRepo) GetCPVByID(id uint) (models.CPVCode, error) {
	var code models.CPVCode
	err := db.DB.First(&code, id).Error
	return code, err
}

func (r *DBClassificationRepo) GetCPVByCodes(codes []string) ([]models.CPVCode, error) {
	var result []models.CPVCode
	err := db.DB.Where("code IN ?", codes).Find(&result).Error
	return result, err
}

func (r *DBClassificationRepo) DeleteCPV(id uint) error {
	return db.DB.Delete(&models.CPVCode{}, id).Error
}

// CPVInUse reports whether any supplier or questionnaire references the code.
func (r *DBClassificationRepo) CPVInUse(id uint) (bool, error) {
	var count int64
	if err := db.DB.Table("supplier_cpv_codes").Where("cpv_code_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := db.DB.Model(&models.Questionnaire{}).Where("cpv_code_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DBClassificationRepo) CreateNUTS(code *models.NUTSCode) error {
	return db.DB.Create(code).Error
}

func (r *DBClassificationRepo) ListNUTS() ([]models.NUTSCode, error) {
	var codes []models.NUTSCode
	err := db.DB.Order("code").Find(&codes).Error
	return codes, err
}

func (r *DBClassificationRepo) GetNUTSByCodes(codes []string) ([]models.NUTSCode, error) {
	var result []models.NUTSCode
	err := db.DB.Where("code IN ?", codes).Find(&result).Error
	return result, err
}

func (r *DBClassificationRepo) DeleteNUTS(id uint) error {
	return db.DB.Delete(&models.NUTSCode{}, id).Error
}

func (r *DBClassificationRepo) NUTSInUse(id uint) (bool, error) {
	var count int64
	err := db.DB.Table("supplier_nuts_codes").Where("nuts_code_id = ?", id).Count(&count).Error
	return count > 0, err
}
