package models

import "time"

type Company struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:120;not null" json:"name"`
	Location string  `gorm:"size:120" json:"location"`
	OwnerID  uint    `gorm:"column:owner;not null;index" json:"owner"`
	Image    *string `gorm:"size:75" json:"image"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
