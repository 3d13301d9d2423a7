package dto

type RegisterSupplierInput struct {
	Email              string   `json:"email" binding:"required,email" example:"contact@acme.com"`
	Password           string   `json:"password" binding:"required,min=8" example:"password123"`
	CompanyName        string   `json:"company_name" binding:"required" example:"ACME Construction Ltd"`
	RegistrationNumber string   `json:"registration_number" example:"RO123456"`
	ContactName        string   `json:"contact_name" example:"John Doe"`
	Phone              string   `json:"phone" example:"+40 720 000 000"`
	City               string   `json:"city" example:"Bucharest"`
	Country            string   `json:"country" example:"Romania"`
	Turnover           float64  `json:"turnover" example:"250000"`
	CPVCodes           []string `json:"cpv_codes" binding:"omitempty,dive,cpvcode"`
	NUTSCodes          []string `json:"nuts_codes" binding:"omitempty,dive,nutscode"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"contact@acme.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}
