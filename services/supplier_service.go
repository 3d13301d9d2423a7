package services

import (
	"errors"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrSupplierNotApproved = errors.New("supplier is not approved")
)

type SupplierService struct {
	Repos *repositories.Repos
}

func NewSupplierService(repos *repositories.Repos) *SupplierService {
	return &SupplierService{Repos: repos}
}

func (s *SupplierService) GetProfile(userID uint) (models.Supplier, error) {
	supplier, err := s.Repos.Supplier.GetByUserID(userID)
	if err != nil {
		return models.Supplier{}, ErrProfileNotFound
	}
	return supplier, nil
}

func (s *SupplierService) UpdateProfile(userID uint, input dto.UpdateSupplierProfileInput) (models.Supplier, error) {
	supplier, err := s.Repos.Supplier.GetByUserID(userID)
	if err != nil {
		return models.Supplier{}, ErrProfileNotFound
	}

	if input.CompanyName != nil {
		supplier.CompanyName = *input.CompanyName
	}
	if input.RegistrationNumber != nil {
		supplier.RegistrationNumber = *input.RegistrationNumber
	}
	if input.ContactName != nil {
		supplier.ContactName = *input.ContactName
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.City != nil {
		supplier.City = *input.City
	}
	if input.Country != nil {
		supplier.Country = *input.Country
	}
	if input.Turnover != nil {
		supplier.Turnover = *input.Turnover
	}

	if err := s.Repos.Supplier.Save(&supplier); err != nil {
		return models.Supplier{}, err
	}

	if input.CPVCodes != nil {
		codes, err := s.Repos.Classification.GetCPVByCodes(input.CPVCodes)
		if err != nil {
			return models.Supplier{}, err
		}
		if len(codes) != len(input.CPVCodes) {
			return models.Supplier{}, ErrUnknownCode
		}
		if err := s.Repos.Supplier.ReplaceCPVCodes(&supplier, codes); err != nil {
			return models.Supplier{}, err
		}
		supplier.CPVCodes = codes
	}
	if input.NUTSCodes != nil {
		codes, err := s.Repos.Classification.GetNUTSByCodes(input.NUTSCodes)
		if err != nil {
			return models.Supplier{}, err
		}
		if len(codes) != len(input.NUTSCodes) {
			return models.Supplier{}, ErrUnknownCode
		}
		if err := s.Repos.Supplier.ReplaceNUTSCodes(&supplier, codes); err != nil {
			return models.Supplier{}, err
		}
		supplier.NUTSCodes = codes
	}

	return supplier, nil
}

// ActiveQuestionnaires lists what the supplier may answer right now. Only
// approved suppliers see anything.
func (s *SupplierService) ActiveQuestionnaires(userID uint) ([]models.Questionnaire, error) {
	supplier, err := s.Repos.Supplier.GetByUserID(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	if supplier.Status != models.SupplierStatusApproved {
		return nil, ErrSupplierNotApproved
	}
	return s.Repos.Questionnaire.ListActiveForSupplier(supplier.ID)
}

// OwnResponses includes responses to questionnaires that have since expired.
func (s *SupplierService) OwnResponses(userID uint) ([]models.QuestionnaireResponse, error) {
	supplier, err := s.Repos.Supplier.GetByUserID(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return s.Repos.Response.ListBySupplier(supplier.ID)
}
