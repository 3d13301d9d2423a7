package services

import (
	"errors"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
)

var ErrCompanyNotFound = errors.New("company not found")

type EntityService struct {
	Repos *repositories.Repos
}

func NewEntityService(repos *repositories.Repos) *EntityService {
	return &EntityService{Repos: repos}
}

func (s *EntityService) GetProfile(userID uint) (models.ProcuringEntity, error) {
	entity, err := s.Repos.Entity.GetByUserID(userID)
	if err != nil {
		return models.ProcuringEntity{}, ErrProfileNotFound
	}
	return entity, nil
}

func (s *EntityService) UpdateProfile(userID uint, input dto.UpdateEntityProfileInput) (models.ProcuringEntity, error) {
	entity, err := s.Repos.Entity.GetByUserID(userID)
	if err != nil {
		return models.ProcuringEntity{}, ErrProfileNotFound
	}

	if input.EntityName != nil {
		entity.EntityName = *input.EntityName
	}
	if input.ContactName != nil {
		entity.ContactName = *input.ContactName
	}
	if input.Phone != nil {
		entity.Phone = *input.Phone
	}
	if input.CompanyID != nil {
		if _, err := s.Repos.Entity.GetCompanyByID(*input.CompanyID); err != nil {
			return models.ProcuringEntity{}, ErrCompanyNotFound
		}
		entity.CompanyID = input.CompanyID
	}

	if err := s.Repos.Entity.Save(&entity); err != nil {
		return models.ProcuringEntity{}, err
	}
	return entity, nil
}

// SearchSuppliers is restricted to approved suppliers that have submitted at
// least one response to this entity's questionnaires.
func (s *EntityService) SearchSuppliers(userID uint, filters dto.SupplierSearchInput) ([]models.Supplier, int64, error) {
	entity, err := s.Repos.Entity.GetByUserID(userID)
	if err != nil {
		return nil, 0, ErrProfileNotFound
	}
	return s.Repos.Supplier.Search(entity.ID, filters)
}
