// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post categories. CategoryGeneral is the default on create.
const (
	CategoryGeneral     = "general"
	CategoryWebDesign   = "web-design"
	CategoryDevelopment = "development"
	CategoryDatabases   = "databases"
	CategoryDevOps      = "devops"
	CategoryMarketing   = "marketing"
)

// Categories lists every valid post category.
var Categories = []string{
	CategoryGeneral,
	CategoryWebDesign,
	CategoryDevelopment,
	CategoryDatabases,
	CategoryDevOps,
	CategoryMarketing,
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Post represents a blog post. Slug is derived from Title and re-derived
// whenever the title changes. ViewCount only ever increases, and only via
// an atomic increment at the storage layer.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Title     string         `gorm:"not null" json:"title"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Desc      string         `gorm:"size:500" json:"desc"`
	Tags      []string       `gorm:"serializer:json" json:"tags"`
	Category  string         `gorm:"not null;default:general" json:"category"`
	Img       string         `json:"img"`
	ViewCount int64          `gorm:"not null;default:0" json:"view_count"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
