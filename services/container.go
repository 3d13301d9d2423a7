package services

import (
	"github.com/openprocure/portal-go/mailer"
	"github.com/openprocure/portal-go/repositories"
)

type Services struct {
	Auth          *AuthService
	Admin         *AdminService
	Supplier      *SupplierService
	Entity        *EntityService
	Questionnaire *QuestionnaireService
	Response      *ResponseService
	Document      *DocumentService
	Announcement  *AnnouncementService
	Notification  *NotificationService
}

func New(repos *repositories.Repos, sender mailer.Sender) *Services {
	notification := NewNotificationService(repos, sender)
	return &Services{
		Auth:          NewAuthService(repos, notification),
		Admin:         NewAdminService(repos, notification),
		Supplier:      NewSupplierService(repos),
		Entity:        NewEntityService(repos),
		Questionnaire: NewQuestionnaireService(repos, notification),
		Response:      NewResponseService(repos),
		Document:      NewDocumentService(repos),
		Announcement:  NewAnnouncementService(repos),
		Notification:  notification,
	}
}
