package models

import "time"

// Meal types accepted on a plan item
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealPlan is one week of scheduled meals. The "current" plan for a user
// is the most recently created one; callers resolve it with an explicit
// query rather than assuming fetch order.
type MealPlan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	WeekStartDate time.Time `json:"week_start_date"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []MealPlanItem `json:"items,omitempty"`
}

// MealPlanItem schedules one meal on a day of the week. Several items may
// share the same plan, day and type.
type MealPlanItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MealPlanID uint      `gorm:"index;not null" json:"meal_plan_id"`
	MealID     uint      `gorm:"not null" json:"meal_id"`
	DayOfWeek  int       `json:"day_of_week"` // 0=Sunday .. 6=Saturday
	MealType   string    `json:"meal_type"`
	Servings   int       `gorm:"default:1" json:"servings"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`

	Meal Meal `json:"meal,omitempty"`
}

// ValidMealType reports whether t is one of the accepted meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
