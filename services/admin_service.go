package services

import (
	"errors"
	"strings"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrSupplierNotPending  = errors.New("supplier is not pending review")
	ErrSupplierNotRejected = errors.New("supplier is not rejected")
	ErrCodeTaken           = errors.New("classification code already exists")
	ErrCodeInUse           = errors.New("classification code is referenced and cannot be deleted")
	ErrMissingProfileName  = errors.New("profile name is required for the role")
)

type AdminService struct {
	Repos        *repositories.Repos
	Notification *NotificationService
}

func NewAdminService(repos *repositories.Repos, notification *NotificationService) *AdminService {
	return &AdminService{Repos: repos, Notification: notification}
}

// CreateUser onboards an account of any role; supplier and procuring-entity
// accounts are created atomically with their profile.
func (s *AdminService) CreateUser(input dto.CreateUserInput) (models.User, error) {
	email := strings.ToLower(input.Email)

	_, err := s.Repos.User.GetUserByEmail(email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     models.UserRole(input.Role),
		IsActive: true,
	}

	switch user.Role {
	case models.UserRoleSupplier:
		if input.CompanyName == "" {
			return models.User{}, ErrMissingProfileName
		}
		supplier := models.Supplier{
			CompanyName: input.CompanyName,
			Status:      models.SupplierStatusPending,
		}
		if err := s.Repos.Supplier.CreateWithUser(&user, &supplier); err != nil {
			return models.User{}, err
		}
	case models.UserRoleProcuringEntity:
		if input.EntityName == "" {
			return models.User{}, ErrMissingProfileName
		}
		entity := models.ProcuringEntity{
			EntityName: input.EntityName,
			CompanyID:  input.CompanyID,
		}
		if err := s.Repos.Entity.CreateWithUser(&user, &entity); err != nil {
			return models.User{}, err
		}
	default:
		if err := s.Repos.User.CreateUser(&user); err != nil {
			return models.User{}, err
		}
	}

	return user, nil
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *AdminService) GetUser(id uint) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *AdminService) SetUserActive(id uint, active bool) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	user.IsActive = active
	if err := s.Repos.User.SaveUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *AdminService) DeleteUser(id uint) error {
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.Repos.User.DeleteUser(id)
}

func (s *AdminService) ListSuppliers(status models.SupplierStatus) ([]models.Supplier, error) {
	return s.Repos.Supplier.ListByStatus(status)
}

// ApproveSupplier moves a pending supplier to approved and records who did it.
func (s *AdminService) ApproveSupplier(adminUserID, supplierID uint) (models.Supplier, error) {
	supplier, err := s.Repos.Supplier.GetByID(supplierID)
	if err != nil {
		return models.Supplier{}, ErrSupplierNotFound
	}
	if supplier.Status != models.SupplierStatusPending {
		return models.Supplier{}, ErrSupplierNotPending
	}

	supplier.Status = models.SupplierStatusApproved
	supplier.ApprovedByID = &adminUserID
	supplier.RejectionReason = nil
	if err := s.Repos.Supplier.Save(&supplier); err != nil {
		return models.Supplier{}, err
	}

	s.Notification.SupplierApproved(supplier.User.Email, supplier.CompanyName)
	return supplier, nil
}

// RejectSupplier moves a pending supplier to rejected; a reason is mandatory.
func (s *AdminService) RejectSupplier(supplierID uint, reason string) (models.Supplier, error) {
	supplier, err := s.Repos.Supplier.GetByID(supplierID)
	if err != nil {
		return models.Supplier{}, ErrSupplierNotFound
	}
	if supplier.Status != models.SupplierStatusPending {
		return models.Supplier{}, ErrSupplierNotPending
	}

	supplier.Status = models.SupplierStatusRejected
	supplier.RejectionReason = &reason
	if err := s.Repos.Supplier.Save(&supplier); err != nil {
		return models.Supplier{}, err
	}

	s.Notification.SupplierRejected(supplier.User.Email, supplier.CompanyName, reason)
	return supplier, nil
}

// ReopenSupplier moves a rejected supplier back to pending for another review.
func (s *AdminService) ReopenSupplier(supplierID uint) (models.Supplier, error) {
	supplier, err := s.Repos.Supplier.GetByID(supplierID)
	if err != nil {
		return models.Supplier{}, ErrSupplierNotFound
	}
	if supplier.Status != models.SupplierStatusRejected {
		return models.Supplier{}, ErrSupplierNotRejected
	}

	supplier.Status = models.SupplierStatusPending
	supplier.RejectionReason = nil
	if err := s.Repos.Supplier.Save(&supplier); err != nil {
		return models.Supplier{}, err
	}
	return supplier, nil
}

func (s *AdminService) CreateCPVCode(input dto.CreateCodeInput) (models.CPVCode, error) {
	existing, err := s.Repos.Classification.GetCPVByCodes([]string{input.Code})
	if err != nil {
		return models.CPVCode{}, err
	}
	if len(existing) > 0 {
		return models.CPVCode{}, ErrCodeTaken
	}

	code := models.CPVCode{Code: input.Code, Description: input.Description}
	if err := s.Repos.Classification.CreateCPV(&code); err != nil {
		return models.CPVCode{}, err
	}
	return code, nil
}

func (s *AdminService) DeleteCPVCode(id uint) error {
	inUse, err := s.Repos.Classification.CPVInUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCodeInUse
	}
	return s.Repos.Classification.DeleteCPV(id)
}

func (s *AdminService) CreateNUTSCode(input dto.CreateCodeInput) (models.NUTSCode, error) {
	existing, err := s.Repos.Classification.GetNUTSByCodes([]string{input.Code})
	if err != nil {
		return models.NUTSCode{}, err
	}
	if len(existing) > 0 {
		return models.NUTSCode{}, ErrCodeTaken
	}

	code := models.NUTSCode{Code: input.Code, Description: input.Description}
	if err := s.Repos.Classification.CreateNUTS(&code); err != nil {
		return models.NUTSCode{}, err
	}
	return code, nil
}

func (s *AdminService) DeleteNUTSCode(id uint) error {
	inUse, err := s.Repos.Classification.NUTSInUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCodeInUse
	}
	return s.Repos.Classification.DeleteNUTS(id)
}
