package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultCuisine         = "Indian"
	DefaultRating          = 4.5
	DefaultRestaurantImage = "https://via.placeholder.com/400x300/FF6B6B/FFFFFF?text=Indian+Restaurant"
	DefaultMenuItemImage   = "https://via.placeholder.com/300x200/4ECDC4/FFFFFF?text=Indian+Dish"
)

// Category is the fixed set of menu sections
type Category string

const (
	CategoryAppetizers Category = "Appetizers"
	CategoryMainCourse Category = "Main Course"
	CategoryBiryani    Category = "Biryani"
	CategoryTandoor    Category = "Tandoor"
	CategoryDesserts   Category = "Desserts"
	CategoryBeverages  Category = "Beverages"
)

// Categories lists every menu category in display order
var Categories = []Category{
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryBiryani,
	CategoryTandoor,
	CategoryDesserts,
	CategoryBeverages,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Restaurant struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36" bson:"_id"`
	Name           string    `json:"name" gorm:"not null" bson:"name"`
	Address        string    `json:"address" gorm:"not null" bson:"address"`
	Phone          string    `json:"phone" gorm:"not null" bson:"phone"`
	Hours          string    `json:"hours" gorm:"not null" bson:"hours"`
	PriceRange     string    `json:"priceRange" gorm:"not null" bson:"priceRange"`
	ServiceOptions []string  `json:"serviceOptions" gorm:"serializer:json;type:text" bson:"serviceOptions"`
	Cuisine        string    `json:"cuisine" gorm:"default:'Indian'" bson:"cuisine"`
	Rating         float64   `json:"rating" gorm:"default:4.5" bson:"rating"`
	Description    string    `json:"description" bson:"description"`
	Image          string    `json:"image" bson:"image"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the fields that carry a default value when left empty
func (r *Restaurant) ApplyDefaults() {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Cuisine == "" {
		r.Cuisine = DefaultCuisine
	}
	if r.Rating == 0 {
		r.Rating = DefaultRating
	}
	if r.Image == "" {
		r.Image = DefaultRestaurantImage
	}
	if r.ServiceOptions == nil {
		r.ServiceOptions = []string{}
	}
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	r.ApplyDefaults()
	return nil
}

// RestaurantRef is the slice of a restaurant embedded into menu items, orders and reservations
type RestaurantRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Ref projects the restaurant onto its reference form
func (r Restaurant) Ref() *RestaurantRef {
	return &RestaurantRef{ID: r.ID, Name: r.Name, Address: r.Address}
}

type MenuItem struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36" bson:"_id"`
	Name         string         `json:"name" gorm:"not null" bson:"name"`
	Description  string         `json:"description" gorm:"not null" bson:"description"`
	Price        int64          `json:"price" gorm:"not null" bson:"price"`
	Category     Category       `json:"category" gorm:"not null;index" bson:"category"`
	IsVeg        bool           `json:"isVeg" bson:"isVeg"`
	Image        string         `json:"image" bson:"image"`
	RestaurantID string         `json:"restaurantId" gorm:"not null;index;size:36" bson:"restaurantId"`
	Restaurant   *RestaurantRef `json:"restaurant,omitempty" gorm:"-" bson:"-"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (m *MenuItem) ApplyDefaults() {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Image == "" {
		m.Image = DefaultMenuItemImage
	}
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	m.ApplyDefaults()
	return nil
}
