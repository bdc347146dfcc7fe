package model

import "time"

// UserTier classifies an account. No business rule consumes it yet; it is
// an extension point for premium-only features.
type UserTier string

const (
	UserTierFree    UserTier = "FREE"
	UserTierPremium UserTier = "PREMIUM"
)

// User represents a registered marketplace user.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Tier         UserTier  `json:"tier" gorm:"type:varchar(20);not null;default:'FREE'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Items []Item `json:"items,omitempty" gorm:"foreignKey:UserID"`
}
