package services

import (
	"errors"
	"strings"
	"time"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/middleware"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already associated with an account")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUnknownCode         = errors.New("unknown classification code")
)

type AuthService struct {
	Repos        *repositories.Repos
	Notification *NotificationService
}

func NewAuthService(repos *repositories.Repos, notification *NotificationService) *AuthService {
	return &AuthService{Repos: repos, Notification: notification}
}

// RegisterSupplier creates the account and the pending supplier profile
// atomically, then sends a best-effort welcome email.
func (s *AuthService) RegisterSupplier(input dto.RegisterSupplierInput) (models.Supplier, error) {
	email := strings.ToLower(input.Email)

	_, err := s.Repos.User.GetUserByEmail(email)
	if err == nil {
		return models.Supplier{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Supplier{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Supplier{}, ErrPasswordHashFailure
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     models.UserRoleSupplier,
		IsActive: true,
	}
	supplier := models.Supplier{
		CompanyName:        input.CompanyName,
		RegistrationNumber: input.RegistrationNumber,
		ContactName:        input.ContactName,
		Phone:              input.Phone,
		City:               input.City,
		Country:            input.Country,
		Turnover:           input.Turnover,
		Status:             models.SupplierStatusPending,
	}

	if err := s.Repos.Supplier.CreateWithUser(&user, &supplier); err != nil {
		return models.Supplier{}, err
	}

	if len(input.CPVCodes) > 0 {
		codes, err := s.Repos.Classification.GetCPVByCodes(input.CPVCodes)
		if err != nil {
			return supplier, err
		}
		if len(codes) != len(input.CPVCodes) {
			return supplier, ErrUnknownCode
		}
		if err := s.Repos.Supplier.ReplaceCPVCodes(&supplier, codes); err != nil {
			return supplier, err
		}
	}
	if len(input.NUTSCodes) > 0 {
		codes, err := s.Repos.Classification.GetNUTSByCodes(input.NUTSCodes)
		if err != nil {
			return supplier, err
		}
		if len(codes) != len(input.NUTSCodes) {
			return supplier, ErrUnknownCode
		}
		if err := s.Repos.Supplier.ReplaceNUTSCodes(&supplier, codes); err != nil {
			return supplier, err
		}
	}

	s.Notification.SupplierRegistered(user.Email, supplier.CompanyName)
	supplier.User = user
	return supplier, nil
}

func (s *AuthService) Login(input dto.LoginInput) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, "", ErrAccountDeactivated
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, string(user.Role), 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
