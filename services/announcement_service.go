package services

import (
	"errors"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementService struct {
	Repos *repositories.Repos
}

func NewAnnouncementService(repos *repositories.Repos) *AnnouncementService {
	return &AnnouncementService{Repos: repos}
}

func (s *AnnouncementService) Create(createdByID uint, input dto.CreateAnnouncementInput) (models.Announcement, error) {
	audience := models.AudienceAll
	if input.Audience != "" {
		audience = models.AnnouncementAudience(input.Audience)
	}
	if input.CPVCodeID != nil {
		if _, err := s.Repos.Classification.GetCPVByID(*input.CPVCodeID); err != nil {
			return models.Announcement{}, ErrCPVCodeNotFound
		}
	}

	a := models.Announcement{
		Title:       input.Title,
		Body:        input.Body,
		Audience:    audience,
		CPVCodeID:   input.CPVCodeID,
		CreatedByID: createdByID,
	}
	if err := s.Repos.Announcement.Create(&a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

func (s *AnnouncementService) Update(id uint, input dto.UpdateAnnouncementInput) (models.Announcement, error) {
	a, err := s.Repos.Announcement.GetByID(id)
	if err != nil {
		return models.Announcement{}, ErrAnnouncementNotFound
	}

	if input.Title != nil {
		a.Title = *input.Title
	}
	if input.Body != nil {
		a.Body = *input.Body
	}
	if input.Audience != nil {
		a.Audience = models.AnnouncementAudience(*input.Audience)
	}
	if input.CPVCodeID != nil {
		if _, err := s.Repos.Classification.GetCPVByID(*input.CPVCodeID); err != nil {
			return models.Announcement{}, ErrCPVCodeNotFound
		}
		a.CPVCodeID = input.CPVCodeID
	}

	if err := s.Repos.Announcement.Save(&a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

func (s *AnnouncementService) Delete(id uint) error {
	if _, err := s.Repos.Announcement.GetByID(id); err != nil {
		return ErrAnnouncementNotFound
	}
	return s.Repos.Announcement.Delete(id)
}

// ListForUser narrows the feed by role; CPV-scoped announcements only reach
// suppliers holding the code.
func (s *AnnouncementService) ListForUser(userID uint, role string) ([]models.Announcement, error) {
	switch models.UserRole(role) {
	case models.UserRoleSupplier:
		supplier, err := s.Repos.Supplier.GetByUserID(userID)
		if err != nil {
			return nil, ErrProfileNotFound
		}
		codeIDs := make([]uint, 0, len(supplier.CPVCodes))
		for _, code := range supplier.CPVCodes {
			codeIDs = append(codeIDs, code.ID)
		}
		return s.Repos.Announcement.ListForAudience(
			[]models.AnnouncementAudience{models.AudienceAll, models.AudienceSuppliers},
			codeIDs,
		)
	case models.UserRoleProcuringEntity:
		return s.Repos.Announcement.ListForAudience(
			[]models.AnnouncementAudience{models.AudienceAll, models.AudienceProcuringEntities},
			nil,
		)
	default:
		return s.Repos.Announcement.ListAll()
	}
}
