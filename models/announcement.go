package models

import "time"

type AnnouncementAudience string

const (
	AudienceAll               AnnouncementAudience = "all"
	AudienceSuppliers         AnnouncementAudience = "suppliers"
	AudienceProcuringEntities AnnouncementAudience = "procuring_entities"
)

type Announcement struct {
	ID          uint                 `gorm:"primaryKey;column:id" json:"id"`
	Title       string               `gorm:"size:255;not null" json:"title"`
	Body        string               `gorm:"type:text;not null" json:"body"`
	Audience    AnnouncementAudience `gorm:"type:announcement_audience;default:'all';not null" json:"audience"`
	CPVCodeID   *uint                `json:"cpv_code_id,omitempty"`
	CreatedByID uint                 `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	CPVCode *CPVCode `gorm:"foreignKey:CPVCodeID" json:"cpv_code,omitempty"`
}
