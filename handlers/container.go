package handlers

import (
	"github.com/openprocure/portal-go/services"
)

type Handlers struct {
	Auth          *AuthHandler
	Admin         *AdminHandler
	Supplier      *SupplierHandler
	Entity        *EntityHandler
	Questionnaire *QuestionnaireHandler
	Document      *DocumentHandler
	Announcement  *AnnouncementHandler
	Taxonomy      *TaxonomyHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(svc.Auth, svc.Supplier, svc.Entity),
		Admin:         NewAdminHandler(svc.Admin),
		Supplier:      NewSupplierHandler(svc.Supplier),
		Entity:        NewEntityHandler(svc.Entity),
		Questionnaire: NewQuestionnaireHandler(svc.Questionnaire, svc.Response),
		Document:      NewDocumentHandler(svc.Document),
		Announcement:  NewAnnouncementHandler(svc.Announcement),
		Taxonomy:      NewTaxonomyHandler(svc.Admin),
	}
}
