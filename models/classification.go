package models

import "time"

// CPVCode is an industry/commodity classification code. Questionnaires are
// scoped to exactly one of these; suppliers declare the codes they operate in.
type CPVCode struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Code        string    `gorm:"size:10;not null;uniqueIndex" json:"code"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// NUTSCode is a geographic region classification code.
type NUTSCode struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Code        string    `gorm:"size:10;not null;uniqueIndex" json:"code"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CPVCode) TableName() string {
	return "cpv_codes"
}

func (NUTSCode) TableName() string {
	return "nuts_codes"
}
