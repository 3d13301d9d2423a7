package repositories

type Repos struct {
	User           UserRepo
	Supplier       SupplierRepo
	Entity         ProcuringEntityRepo
	Classification ClassificationRepo
	Questionnaire  QuestionnaireRepo
	Response       ResponseRepo
	Document       DocumentRepo
	Announcement   AnnouncementRepo
}

func New() *Repos {
	return &Repos{
		User:           &DBUserRepo{},
		Supplier:       &DBSupplierRepo{},
		Entity:         &DBProcuringEntityRepo{},
		Classification: &DBClassificationRepo{},
		Questionnaire:  &DBQuestionnaireRepo{},
		Response:       &DBResponseRepo{},
		Document:       &DBDocumentRepo{},
		Announcement:   &DBAnnouncementRepo{},
	}
}
