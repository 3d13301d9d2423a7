package dto

type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin supplier procuring_entity"`

	// Profile payload, interpreted by role.
	CompanyName string `json:"company_name"`
	EntityName  string `json:"entity_name"`
	CompanyID   *uint  `json:"company_id"`
}

type RejectSupplierInput struct {
	Reason string `json:"reason" binding:"required"`
}

type CreateCodeInput struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

type CreateAnnouncementInput struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Audience  string `json:"audience" binding:"omitempty,oneof=all suppliers procuring_entities"`
	CPVCodeID *uint  `json:"cpv_code_id"`
}

type UpdateAnnouncementInput struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Audience  *string `json:"audience" binding:"omitempty,oneof=all suppliers procuring_entities"`
	CPVCodeID *uint   `json:"cpv_code_id"`
}
