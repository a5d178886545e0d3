// Package planner builds weekly meal plans from a user's profile and the
// meal catalog. Generation is a pure function over data the caller has
// already fetched; persistence happens in the services layer.
package planner

import (
	"errors"

	"github.com/platewise/gin-mealplan-api/internal/models"
)

// MaxDays caps a generated plan at one meal per day of the week.
const MaxDays = 7

// fallbackHouseholdSize is assumed when a profile has no usable household
// size, matching the application default of four servings.
const fallbackHouseholdSize = 4

// ErrProfileRequired is returned when generation is attempted without a
// completed profile. Callers surface it as a prompt, not a retryable fault.
var ErrProfileRequired = errors.New("profile required")

// Generate selects up to seven meals from candidates that match the
// profile's dietary preferences and schedules one per day, starting at
// Sunday (day 0). Selection is first-match in catalog order; every
// generated item is a dinner. The returned drafts reference planID but are
// not persisted.
//
// An empty result is not an error: it means nothing in the catalog
// qualified and there is nothing to plan.
func Generate(profile *models.Profile, candidates []models.Meal, planID uint) ([]models.MealPlanItem, error) {
	if profile == nil {
		return nil, ErrProfileRequired
	}

	items := make([]models.MealPlanItem, 0, MaxDays)
	for _, meal := range candidates {
		if len(items) == MaxDays {
			break
		}
		if !MatchesPreferences(meal.DietaryTags, profile.DietaryPreferences) {
			continue
		}
		items = append(items, models.MealPlanItem{
			MealPlanID: planID,
			MealID:     meal.ID,
			DayOfWeek:  len(items),
			MealType:   models.MealTypeDinner,
			Servings:   clampServings(meal.Servings, profile.HouseholdSize),
		})
	}
	return items, nil
}

// MatchesPreferences reports whether a meal's dietary tags qualify it for
// a set of preferences. Empty preferences accept every meal; otherwise any
// shared tag qualifies (set overlap, not subset).
func MatchesPreferences(tags, preferences []string) bool {
	if len(preferences) == 0 {
		return true
	}
	for _, pref := range preferences {
		for _, tag := range tags {
			if tag == pref {
				return true
			}
		}
	}
	return false
}

// clampServings scales a meal's servings down to the household size and
// keeps the result at least 1.
func clampServings(mealServings, householdSize int) int {
	if householdSize <= 0 {
		householdSize = fallbackHouseholdSize
	}
	servings := mealServings
	if servings > householdSize {
		servings = householdSize
	}
	if servings < 1 {
		servings = 1
	}
	return servings
}
