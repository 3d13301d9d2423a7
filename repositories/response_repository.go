package repositories

import (
	"errors"
	"time"

	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrResponseSubmitted guards the status machine: a submitted response can be
// resubmitted but never moved back to draft.
var ErrResponseSubmitted = errors.New("response already submitted")

type ResponseRepo interface {
	GetByQuestionnaireAndSupplier(questionnaireID, supplierID uint) (models.QuestionnaireResponse, error)
	ListBySupplier(supplierID uint) ([]models.QuestionnaireResponse, error)
	ListSubmittedByQuestionnaire(questionnaireID uint) ([]models.QuestionnaireResponse, error)
	SaveWithAnswers(questionnaireID, supplierID uint, status models.ResponseStatus, answers []models.Answer) (models.QuestionnaireResponse, error)
}

type DBResponseRepo struct{}

func (r *DBResponseRepo) GetByQuestionnaireAndSupplier(questionnaireID, supplierID uint) (models.QuestionnaireResponse, error) {
	var resp models.QuestionnaireResponse
	err := db.DB.
		Preload("Answers", func(tx *gorm.DB) *gorm.DB { return tx.Order("question_id") }).
		Preload("Answers.Question").
		Preload("Answers.Document").
		Where("questionnaire_id = ? AND supplier_id = ?", questionnaireID, supplierID).
		First(&resp).Error
	return resp, err
}

func (r *DBResponseRepo) ListBySupplier(supplierID uint) ([]models.QuestionnaireResponse, error) {
	var resps []models.QuestionnaireResponse
	err := db.DB.
		Preload("Questionnaire").
		Preload("Questionnaire.CPVCode").
		Where("supplier_id = ?", supplierID).
		Order("id").
		Find(&resps).Error
	return resps, err
}

func (r *DBResponseRepo) ListSubmittedByQuestionnaire(questionnaireID uint) ([]models.QuestionnaireResponse, error) {
	var resps []models.QuestionnaireResponse
	err := db.DB.
		Preload("Supplier").
		Preload("Supplier.User").
		Preload("Answers", func(tx *gorm.DB) *gorm.DB { return tx.Order("question_id") }).
		Preload("Answers.Question").
		Preload("Answers.Document").
		Where("questionnaire_id = ? AND status = ?", questionnaireID, models.ResponseStatusSubmitted).
		Order("submitted_at").
		Find(&resps).Error
	return resps, err
}

// SaveWithAnswers upserts the response row and one answer row per question in
// a single transaction. The response row is locked for the duration so two
// concurrent saves cannot interleave their answer writes. A draft save against
// an already-submitted row fails with ErrResponseSubmitted.
func (r *DBResponseRepo) SaveWithAnswers(questionnaireID, supplierID uint, status models.ResponseStatus, answers []models.Answer) (models.QuestionnaireResponse, error) {
	var resp models.QuestionnaireResponse
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("questionnaire_id = ? AND supplier_id = ?", questionnaireID, supplierID).
			First(&resp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp = models.QuestionnaireResponse{
				QuestionnaireID: questionnaireID,
				SupplierID:      supplierID,
				Status:          models.ResponseStatusDraft,
			}
			if err := tx.Create(&resp).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else if resp.Status == models.ResponseStatusSubmitted && status == models.ResponseStatusDraft {
			return ErrResponseSubmitted
		}

		for i := range answers {
			answers[i].ID = 0
			answers[i].ResponseID = resp.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "response_id"}, {Name: "question_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"answer_text", "answer_value", "document_id", "updated_at"}),
			}).Create(&answers[i]).Error; err != nil {
				return err
			}
		}

		resp.Status = status
		if status == models.ResponseStatusSubmitted {
			now := time.Now()
			resp.SubmittedAt = &now
		}
		return tx.Save(&resp).Error
	})
	return resp, err
}
