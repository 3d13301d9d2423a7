package models

import "time"

type Document struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	OwnerUserID uint      `gorm:"not null;index" json:"owner_user_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectPath  string    `gorm:"size:512;not null" json:"object_path"`
	MimeType    string    `gorm:"size:100" json:"mime_type"`
	Size        int64     `gorm:"default:0" json:"size"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
