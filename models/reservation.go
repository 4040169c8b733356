package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar date format accepted for reservations
const DateLayout = "2006-01-02"

// Reservation is a table booking; confirmation happens by phone, outside this service
type Reservation struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36" bson:"_id"`
	CustomerName    string         `json:"customerName" gorm:"not null" bson:"customerName"`
	Email           string         `json:"email" gorm:"not null;index" bson:"email"`
	Phone           string         `json:"phone" gorm:"not null" bson:"phone"`
	RestaurantID    string         `json:"restaurantId" gorm:"not null;size:36" bson:"restaurantId"`
	Restaurant      *RestaurantRef `json:"restaurant,omitempty" gorm:"-" bson:"-"`
	Date            time.Time      `json:"date" gorm:"not null;index" bson:"date"`
	Time            string         `json:"time" gorm:"not null" bson:"time"`
	Guests          int            `json:"guests" gorm:"not null" bson:"guests"`
	SpecialRequests string         `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (r *Reservation) ApplyDefaults() {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	r.ApplyDefaults()
	return nil
}
