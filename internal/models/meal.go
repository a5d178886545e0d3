package models

import (
	"time"

	"gorm.io/datatypes"
)

// Meal is a catalog recipe. UserID is nil for seeded/shared meals.
type Meal struct {
	ID              uint                        `gorm:"primaryKey" json:"id"`
	Name            string                      `gorm:"not null" json:"name"`
	Description     string                      `json:"description"`
	PrepTime        int                         `json:"prep_time"`
	CookTime        int                         `json:"cook_time"`
	Servings        int                         `gorm:"default:4" json:"servings"`
	DietaryTags     datatypes.JSONSlice[string] `json:"dietary_tags"`
	CuisineType     string                      `json:"cuisine_type"`
	DifficultyLevel string                      `json:"difficulty_level"`
	ImageURL        string                      `json:"image_url"`
	UserID          *uint                       `gorm:"index" json:"user_id,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`

	Ingredients []MealIngredient `json:"ingredients,omitempty"`
}

// MealIngredient is one line of a meal's recipe: an ingredient with an
// optional amount and unit. Amount and unit stay nullable so "to taste"
// lines survive round-trips.
type MealIngredient struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	MealID       uint     `gorm:"index;not null" json:"meal_id"`
	IngredientID uint     `gorm:"not null" json:"ingredient_id"`
	Amount       *float64 `json:"amount"`
	Unit         *string  `json:"unit"`
	Notes        string   `json:"notes"`

	Ingredient Ingredient `json:"ingredient"`
}
