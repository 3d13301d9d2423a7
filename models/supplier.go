package models

import "time"

type SupplierStatus string

const (
	SupplierStatusPending  SupplierStatus = "pending"
	SupplierStatusApproved SupplierStatus = "approved"
	SupplierStatusRejected SupplierStatus = "rejected"
)

type Supplier struct {
	ID                 uint           `gorm:"primaryKey;column:id" json:"id"`
	UserID             uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	CompanyName        string         `gorm:"size:200;not null" json:"company_name"`
	RegistrationNumber string         `gorm:"size:50" json:"registration_number"`
	ContactName        string         `gorm:"size:100" json:"contact_name"`
	Phone              string         `gorm:"size:30" json:"phone"`
	City               string         `gorm:"size:100" json:"city"`
	Country            string         `gorm:"size:100" json:"country"`
	Turnover           float64        `gorm:"default:0" json:"turnover"`
	Status             SupplierStatus `gorm:"type:supplier_status;default:'pending';not null" json:"status"`
	ApprovedByID       *uint          `gorm:"column:approved_by_id" json:"approved_by_id,omitempty"`
	RejectionReason    *string        `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CPVCodes  []CPVCode  `gorm:"many2many:supplier_cpv_codes" json:"cpv_codes,omitempty"`
	NUTSCodes []NUTSCode `gorm:"many2many:supplier_nuts_codes" json:"nuts_codes,omitempty"`
	Documents []Document `gorm:"foreignKey:OwnerUserID;references:UserID" json:"documents,omitempty"`
}
