package dto

type UpdateSupplierProfileInput struct {
	CompanyName        *string  `json:"company_name"`
	RegistrationNumber *string  `json:"registration_number"`
	ContactName        *string  `json:"contact_name"`
	Phone              *string  `json:"phone"`
	City               *string  `json:"city"`
	Country            *string  `json:"country"`
	Turnover           *float64 `json:"turnover"`
	CPVCodes           []string `json:"cpv_codes" binding:"omitempty,dive,cpvcode"`
	NUTSCodes          []string `json:"nuts_codes" binding:"omitempty,dive,nutscode"`
}

type UpdateEntityProfileInput struct {
	EntityName  *string `json:"entity_name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	CompanyID   *uint   `json:"company_id"`
}

// SupplierSearchInput carries the conjunctive filters for the procuring
// entity's supplier search. Zero values mean "no filter".
type SupplierSearchInput struct {
	City        string  `form:"city"`
	Country     string  `form:"country"`
	MinTurnover float64 `form:"min_turnover"`
	MaxTurnover float64 `form:"max_turnover"`
	Query       string  `form:"q"`
	CPVCode     string  `form:"cpv_code"`
	NUTSCode    string  `form:"nuts_code"`
	Page        int     `form:"page,default=1"`
	Limit       int     `form:"limit,default=20"`
}
