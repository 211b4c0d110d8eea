package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;unique;not null" json:"name"`
	Slug         string    `gorm:"size:100;unique;not null" json:"slug"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	DisplayOrder int       `gorm:"default:0;not null" json:"displayOrder"`
	Products     []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	return nil
}
