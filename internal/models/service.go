package models

import "time"

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:120;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Type        string  `gorm:"size:60" json:"type"`
	Price       float64 `gorm:"type:numeric(10,2)" json:"price"`
	Duration    int     `json:"duration"`
	CompaniesID uint    `gorm:"column:companies_id;not null;index" json:"companies_id"`
	Available   bool    `gorm:"not null" json:"available"`
	Image       *string `gorm:"size:75" json:"image"`

	Company *Company `gorm:"foreignKey:CompaniesID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// MasterService is a read-only template companies pick from when listing services.
type MasterService struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"size:60" json:"type"`
}
