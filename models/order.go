package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the states an order can be recorded in
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists the modeled statuses; nothing in this service moves an order past pending
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusDelivered,
	StatusCancelled,
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// Normalize maps the empty value to the default delivery type
func (d DeliveryType) Normalize() DeliveryType {
	if d == "" {
		return DeliveryTypeDelivery
	}
	return d
}

func (d DeliveryType) Valid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

type PaymentType string

const (
	PaymentCashOnDelivery PaymentType = "cod"
	PaymentOnline         PaymentType = "online"
)

type Order struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36" bson:"_id"`
	CustomerName string         `json:"customerName" gorm:"not null" bson:"customerName"`
	Email        string         `json:"email" gorm:"not null;index" bson:"email"`
	Phone        string         `json:"phone" gorm:"not null" bson:"phone"`
	Address      string         `json:"address" bson:"address"`
	RestaurantID string         `json:"restaurantId" gorm:"not null;size:36" bson:"restaurantId"`
	Restaurant   *RestaurantRef `json:"restaurant,omitempty" gorm:"-" bson:"-"`
	Items        []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" bson:"items"`
	Subtotal     int64          `json:"subtotal" bson:"subtotal"`
	DeliveryFee  int64          `json:"deliveryFee" bson:"deliveryFee"`
	Tax          int64          `json:"tax" bson:"tax"`
	TotalAmount  int64          `json:"totalAmount" gorm:"not null" bson:"totalAmount"`
	Status       OrderStatus    `json:"status" gorm:"not null;default:'pending'" bson:"status"`
	DeliveryType DeliveryType   `json:"deliveryType" gorm:"not null;default:'delivery'" bson:"deliveryType"`
	// free-text annotations from the client payment step; never verified
	PaymentType   PaymentType `json:"paymentType,omitempty" bson:"paymentType,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"index" bson:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updatedAt"`
}

func (o *Order) ApplyDefaults() {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	o.DeliveryType = o.DeliveryType.Normalize()
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	o.ApplyDefaults()
	return nil
}

type OrderItem struct {
	ID         uint   `json:"-" gorm:"primaryKey" bson:"-"`
	OrderID    string `json:"-" gorm:"not null;index;size:36" bson:"-"`
	MenuItemID string `json:"menuItemId" gorm:"not null;size:36" bson:"menuItemId"`
	Name       string `json:"name" gorm:"not null" bson:"name"`   // snapshot name
	Price      int64  `json:"price" gorm:"not null" bson:"price"` // snapshot price at time of order
	Quantity   int    `json:"quantity" gorm:"not null" bson:"quantity"`
}

func (i OrderItem) UnitPrice() int64 { return i.Price }
func (i OrderItem) Count() int       { return i.Quantity }
