package repositories

import (
	"time"

	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/models"
	"gorm.io/gorm"
)

type QuestionnaireRepo interface {
	Create(q *models.Questionnaire) error
	GetByID(id uint) (models.Questionnaire, error)
	ListByEntity(entityID uint) ([]models.Questionnaire, error)
	ListActiveForSupplier(supplierID uint) ([]models.Questionnaire, error)
	UpdateWithQuestions(q *models.Questionnaire, questions []models.Question) error
	Delete(id uint) error
	HasSubmittedResponses(questionnaireID uint) (bool, error)
}

type DBQuestionnaireRepo struct{}

// StartOfToday is the deadline cutoff: "active" filtering compares at
// calendar-day granularity, so a questionnaire expiring today still shows.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (r *DBQuestionnaireRepo) Create(q *models.Questionnaire) error {
	return db.DB.Create(q).Error
}

func (r *DBQuestionnaireRepo) GetByID(id uint) (models.Questionnaire, error) {
	var q models.Questionnaire
	err := db.DB.
		Preload("CPVCode").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&q, id).Error
	return q, err
}

func (r *DBQuestionnaireRepo) ListByEntity(entityID uint) ([]models.Questionnaire, error) {
	var qs []models.Questionnaire
	err := db.DB.
		Preload("CPVCode").
		Where("procuring_entity_id = ?", entityID).
		Order("id").
		Find(&qs).Error
	return qs, err
}

// ListActiveForSupplier returns the questionnaires the supplier may answer:
// active, deadline not passed, CPV code among the supplier's saved codes.
func (r *DBQuestionnaireRepo) ListActiveForSupplier(supplierID uint) ([]models.Questionnaire, error) {
	var qs []models.Questionnaire
	err := db.DB.
		Joins("JOIN supplier_cpv_codes scc ON scc.cpv_code_id = questionnaires.cpv_code_id AND scc.supplier_id = ?", supplierID).
		Where("questionnaires.is_active = ?", true).
		Where("questionnaires.deadline >= ?", StartOfToday()).
		Preload("CPVCode").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Order("questionnaires.deadline").
		Find(&qs).Error
	return qs, err
}

// UpdateWithQuestions saves the questionnaire and replaces its question list
// wholesale (delete-all then recreate) in one transaction.
func (r *DBQuestionnaireRepo) UpdateWithQuestions(q *models.Questionnaire, questions []models.Question) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions", "CPVCode", "ProcuringEntity").Save(q).Error; err != nil {
			return err
		}
		if questions == nil {
			return nil
		}
		if err := tx.Where("questionnaire_id = ?", q.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].QuestionnaireID = q.ID
		}
		return tx.Create(&questions).Error
	})
}

// Delete cascades through questions, draft responses and their answers.
// Callers must refuse the delete first when submitted responses exist.
func (r *DBQuestionnaireRepo) Delete(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"response_id IN (SELECT id FROM questionnaire_responses WHERE questionnaire_id = ?)", id,
		).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("questionnaire_id = ?", id).Delete(&models.QuestionnaireResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("questionnaire_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Questionnaire{}, id).Error
	})
}

func (r *DBQuestionnaireRepo) HasSubmittedResponses(questionnaireID uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.QuestionnaireResponse{}).
		Where("questionnaire_id = ? AND status = ?", questionnaireID, models.ResponseStatusSubmitted).
		Count(&count).Error
	return count > 0, err
}
