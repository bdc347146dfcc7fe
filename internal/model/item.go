package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus represents the sale status of an item.
type ItemStatus string

const (
	ItemStatusOnSale  ItemStatus = "ON_SALE"
	ItemStatusSoldOut ItemStatus = "SOLD_OUT"
)

// Item represents a listing put up for sale by a user. The owner is the
// creating user and is never reassigned.
type Item struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description" gorm:"size:1024"`
	Status      ItemStatus      `json:"status" gorm:"type:varchar(20);not null;default:'ON_SALE';index"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
