package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses. Store failures
// are returned as-is with their message passed through.
var (
	ErrUserExists      = errors.New("user_already_exists")
	ErrProfileRequired = errors.New("profile_required")
	ErrMealInUse       = errors.New("meal_in_use")
	ErrNoMealPlan      = errors.New("no_meal_plan")
	ErrPlanEmpty       = errors.New("meal_plan_empty")
	ErrInvalidDay      = errors.New("invalid_day_of_week")
	ErrInvalidMealType = errors.New("invalid_meal_type")
	ErrInvalidServings = errors.New("invalid_servings")
)
