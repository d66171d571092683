package models

import "time"

type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ServicesID    uint      `gorm:"column:services_id;not null;index" json:"services_id"`
	UsersID       uint      `gorm:"column:users_id;not null;index" json:"users_id"`
	StartDayDate  string    `gorm:"column:start_day_date;size:10;not null" json:"start_day_date"`
	StartTimeDate string    `gorm:"column:start_time_date;size:5;not null" json:"start_time_date"`
	StartsAt      time.Time `gorm:"column:starts_at;not null" json:"starts_at"`

	Service *Service `gorm:"foreignKey:ServicesID" json:"-"`
	User    *User    `gorm:"foreignKey:UsersID" json:"-"`

	CreatedAt time.Time `json:"-"`
}
