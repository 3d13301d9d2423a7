package services

import (
	"log"

	"github.com/openprocure/portal-go/mailer"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/repositories"
)

// NotificationService sends templated emails after account and questionnaire
// state changes. Every dispatch is best-effort: failures are logged and never
// reach the caller.
type NotificationService struct {
	Repos  *repositories.Repos
	Sender mailer.Sender
}

func NewNotificationService(repos *repositories.Repos, sender mailer.Sender) *NotificationService {
	return &NotificationService{Repos: repos, Sender: sender}
}

func (s *NotificationService) send(to, subject, body string) {
	if body == "" {
		return
	}
	if err := s.Sender.Send(to, subject, body); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
	}
}

func (s *NotificationService) SupplierRegistered(email, companyName string) {
	go s.send(email, "Registration received", mailer.WelcomeBody(companyName))
}

func (s *NotificationService) SupplierApproved(email, companyName string) {
	go s.send(email, "Supplier account approved", mailer.ApprovedBody(companyName))
}

func (s *NotificationService) SupplierRejected(email, companyName, reason string) {
	go s.send(email, "Supplier registration rejected", mailer.RejectedBody(companyName, reason))
}

// QuestionnairePublished fans out to every approved supplier with an active
// account holding the questionnaire's CPV code.
func (s *NotificationService) QuestionnairePublished(q models.Questionnaire) {
	go func() {
		suppliers, err := s.Repos.Supplier.ListNotifiable(q.CPVCodeID)
		if err != nil {
			log.Printf("Failed to resolve questionnaire audience: %v", err)
			return
		}
		for _, supplier := range suppliers {
			s.send(
				supplier.User.Email,
				"New qualification questionnaire: "+q.Title,
				mailer.QuestionnaireBody(supplier.CompanyName, q.Title, q.Deadline),
			)
		}
	}()
}
