package models

import "time"

// Request is the status-tracked follow-up attached to a booking.
type Request struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	BookingsID uint   `gorm:"column:bookings_id;not null;index" json:"bookings_id"`
	Status     string `gorm:"size:30;not null" json:"status"`
	Comment    string `gorm:"type:text" json:"comment"`

	Booking *Booking `gorm:"foreignKey:BookingsID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
