package models

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:120;not null" json:"name"`
	Email        string  `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"column:password_hash;size:255;not null" json:"-"`
	Rol          string  `gorm:"column:rol;size:20;not null" json:"rol"`
	Image        *string `gorm:"size:75" json:"image"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
