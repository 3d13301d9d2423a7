package repositories

import (
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"gorm.io/gorm"
)

type SupplierRepo interface {
	CreateWithUser(user *models.User, supplier *models.Supplier) error
	GetByID(id uint) (models.Supplier, error)
	GetByUserID(userID uint) (models.Supplier, error)
	ListByStatus(status models.SupplierStatus) ([]models.Supplier, error)
	Save(supplier *models.Supplier) error
	ReplaceCPVCodes(supplier *models.Supplier, codes []models.CPVCode) error
	ReplaceNUTSCodes(supplier *models.Supplier, codes []models.NUTSCode) error
	HasCPVCode(supplierID, cpvCodeID uint) (bool, error)
	Search(entityID uint, filters dto.SupplierSearchInput) ([]models.Supplier, int64, error)
	ListNotifiable(cpvCodeID uint) ([]models.Supplier, error)
}

type DBSupplierRepo struct{}

// CreateWithUser creates the account and its supplier profile atomically.
func (r *DBSupplierRepo) CreateWithUser(user *models.User, supplier *models.Supplier) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		supplier.UserID = user.ID
		return tx.Create(supplier).Error
	})
}

func (r *DBSupplierRepo) GetByID(id uint) (models.Supplier, error) {
	var supplier models.Supplier
	err := db.DB.Preload("User").Preload("CPVCodes").Preload("NUTSCodes").First(&supplier, id).Error
	return supplier, err
}

func (r *DBSupplierRepo) GetByUserID(userID uint) (models.Supplier, error) {
	var supplier models.Supplier
	err := db.DB.Preload("CPVCodes").Preload("NUTSCodes").Where("user_id = ?", userID).First(&supplier).Error
	return supplier, err
}

func (r *DBSupplierRepo) ListByStatus(status models.SupplierStatus) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	query := db.DB.Preload("User").Preload("CPVCodes").Order("id")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&suppliers).Error
	return suppliers, err
}

func (r *DBSupplierRepo) Save(supplier *models.Supplier) error {
	return db.DB.Save(supplier).Error
}

func (r *DBSupplierRepo) ReplaceCPVCodes(supplier *models.Supplier, codes []models.CPVCode) error {
	return db.DB.Model(supplier).Association("CPVCodes").Replace(codes)
}

func (r *DBSupplierRepo) ReplaceNUTSCodes(supplier *models.Supplier, codes []models.NUTSCode) error {
	return db.DB.Model(supplier).Association("NUTSCodes").Replace(codes)
}

func (r *DBSupplierRepo) HasCPVCode(supplierID, cpvCodeID uint) (bool, error) {
	var count int64
	err := db.DB.Table("supplier_cpv_codes").
		Where("supplier_id = ? AND cpv_code_id = ?", supplierID, cpvCodeID).
		Count(&count).Error
	return count > 0, err
}

// Search returns approved suppliers with at least one submitted response to
// the entity's questionnaires, narrowed by the conjunctive filters.
func (r *DBSupplierRepo) Search(entityID uint, filters dto.SupplierSearchInput) ([]models.Supplier, int64, error) {
	query := db.DB.Model(&models.Supplier{}).
		Joins("JOIN questionnaire_responses qr ON qr.supplier_id = suppliers.id AND qr.status = ?", models.ResponseStatusSubmitted).
		Joins("JOIN questionnaires q ON q.id = qr.questionnaire_id AND q.procuring_entity_id = ?", entityID).
		Joins("JOIN users u ON u.id = suppliers.user_id").
		Where("suppliers.status = ?", models.SupplierStatusApproved).
		Distinct("suppliers.*")

	if filters.City != "" {
		query = query.Where("suppliers.city ILIKE ?", filters.City)
	}
	if filters.Country != "" {
		query = query.Where("suppliers.country ILIKE ?", filters.Country)
	}
	if filters.MinTurnover > 0 {
		query = query.Where("suppliers.turnover >= ?", filters.MinTurnover)
	}
	if filters.MaxTurnover > 0 {
		query = query.Where("suppliers.turnover <= ?", filters.MaxTurnover)
	}
	if filters.Query != "" {
		like := "%" + filters.Query + "%"
		query = query.Where(
			"suppliers.company_name ILIKE ? OR suppliers.registration_number ILIKE ? OR suppliers.contact_name ILIKE ? OR u.email ILIKE ?",
			like, like, like, like,
		)
	}
	if filters.CPVCode != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM supplier_cpv_codes scc JOIN cpv_codes cc ON cc.id = scc.cpv_code_id WHERE scc.supplier_id = suppliers.id AND cc.code = ?)",
			filters.CPVCode,
		)
	}
	if filters.NUTSCode != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM supplier_nuts_codes snc JOIN nuts_codes nc ON nc.id = snc.nuts_code_id WHERE snc.supplier_id = suppliers.id AND nc.code = ?)",
			filters.NUTSCode,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}

	var suppliers []models.Supplier
	err := query.
		Preload("User").Preload("CPVCodes").Preload("NUTSCodes").
		Order("suppliers.id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&suppliers).Error
	return suppliers, total, err
}

// ListNotifiable resolves the questionnaire notification audience: approved
// suppliers with an active account holding the given CPV code.
func (r *DBSupplierRepo) ListNotifiable(cpvCodeID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := db.DB.
		Joins("JOIN users u ON u.id = suppliers.user_id AND u.is_active = ?", true).
		Joins("JOIN supplier_cpv_codes scc ON scc.supplier_id = suppliers.id AND scc.cpv_code_id = ?", cpvCodeID).
		Where("suppliers.status = ?", models.SupplierStatusApproved).
		Preload("User").
		Find(&suppliers).Error
	return suppliers, err
}
