package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	CategoryID         string    `gorm:"index;not null" json:"categoryId"`
	Name               string    `gorm:"size:200;not null" json:"name"`
	Slug               string    `gorm:"size:200;unique;not null" json:"slug"`
	Description        string    `gorm:"not null" json:"description"`
	Price              string    `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL           string    `gorm:"not null" json:"imageUrl"`
	Origin             string    `gorm:"size:100" json:"origin"`
	BrewingSuggestions string    `json:"brewingSuggestions"`
	InStock            bool      `gorm:"default:true;not null" json:"inStock"`
	Featured           bool      `gorm:"default:false;not null;index" json:"featured"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
