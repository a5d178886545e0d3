package models

import "time"

// GroceryList is derived from a meal plan's items. MealPlanID is nil for
// lists whose source plan has been deleted.
type GroceryList struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	MealPlanID  *uint     `json:"meal_plan_id,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Items []GroceryListItem `json:"items,omitempty"`
}

// GroceryListItem is one ingredient line on a grocery list. Lines are not
// merged across meals: two meals that both need flour produce two lines.
type GroceryListItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GroceryListID  uint      `gorm:"index;not null" json:"grocery_list_id"`
	IngredientID   uint      `gorm:"not null" json:"ingredient_id"`
	Amount         *float64  `json:"amount"`
	Unit           *string   `json:"unit"`
	EstimatedPrice *float64  `json:"estimated_price,omitempty"`
	IsChecked      bool      `json:"is_checked"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`

	Ingredient Ingredient `json:"ingredient"`
}
