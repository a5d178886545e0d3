package models

import "time"

// PantryItem tracks what a user already has at home.
type PantryItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	IngredientID uint       `gorm:"not null" json:"ingredient_id"`
	Amount       *float64   `json:"amount"`
	Unit         *string    `json:"unit"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Ingredient Ingredient `json:"ingredient"`
}
