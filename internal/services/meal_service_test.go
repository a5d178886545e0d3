package services

import (
	"testing"
	"time"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateMealWithRecipeLines(t *testing.T) {
	db := setupTestDB(t)
	flour := createTestIngredient(t, db, "flour", "Baking", "cup")
	missing := uint(9999)

	svc := NewMealService(db)

	t.Run("creates meal and lines together", func(t *testing.T) {
		amount := 2.0
		unit := "cups"
		meal, err := svc.CreateMeal(
			&models.Meal{Name: "Pancakes", Servings: 4, DietaryTags: []string{"vegetarian"}},
			[]MealIngredientRequest{{IngredientID: flour.ID, Amount: &amount, Unit: &unit}},
		)
		require.NoError(t, err)
		require.Len(t, meal.Ingredients, 1)
		assert.Equal(t, "flour", meal.Ingredients[0].Ingredient.Name)
	})

	t.Run("unknown ingredient rolls the meal back", func(t *testing.T) {
		_, err := svc.CreateMeal(
			&models.Meal{Name: "Ghost Soup", Servings: 2},
			[]MealIngredientRequest{{IngredientID: missing}},
		)
		require.Error(t, err)

		var count int64
		require.NoError(t, db.Model(&models.Meal{}).Where("name = ?", "Ghost Soup").Count(&count).Error)
		assert.Zero(t, count, "failed recipe line must not leave a meal behind")
	})
}

func TestListMealsPreferenceFilter(t *testing.T) {
	db := setupTestDB(t)
	createTestMeal(t, db, "Veggie Bowl", 2, "vegetarian")
	createTestMeal(t, db, "Steak", 2, "keto")

	svc := NewMealService(db)

	all, err := svc.ListMeals(nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	veg, err := svc.ListMeals([]string{"vegetarian"}, 0)
	require.NoError(t, err)
	require.Len(t, veg, 1)
	assert.Equal(t, "Veggie Bowl", veg[0].Name)
}

func TestDeleteMealInUse(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "cook@example.com")
	meal := createTestMeal(t, db, "Lasagna", 6)

	plans := newPlanService(db)
	plan, err := plans.CreatePlan(user.ID, time.Time{}, "")
	require.NoError(t, err)
	_, err = plans.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 3})
	require.NoError(t, err)

	svc := NewMealService(db)
	err = svc.DeleteMeal(meal.ID)
	assert.ErrorIs(t, err, ErrMealInUse)

	// Unschedule it, then deletion goes through
	items, err := plans.GetPlan(user.ID, plan.ID)
	require.NoError(t, err)
	require.NoError(t, plans.RemoveItem(user.ID, items.Items[0].ID))
	require.NoError(t, svc.DeleteMeal(meal.ID))

	_, err = svc.GetMeal(meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplaceIngredients(t *testing.T) {
	db := setupTestDB(t)
	flour := createTestIngredient(t, db, "flour", "Baking", "cup")
	milk := createTestIngredient(t, db, "milk", "Dairy", "cup")
	meal := createTestMeal(t, db, "Crepes", 4)
	addRecipeLine(t, db, meal.ID, flour.ID, 1, "cup")

	svc := NewMealService(db)
	amount := 2.0
	updated, err := svc.ReplaceIngredients(meal.ID, []MealIngredientRequest{
		{IngredientID: milk.ID, Amount: &amount},
	})
	require.NoError(t, err)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "milk", updated.Ingredients[0].Ingredient.Name)
}

func TestProfileUpsert(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "profile@example.com")
	svc := NewProfileService(db)

	created, err := svc.Upsert(&models.Profile{
		UserID:             user.ID,
		DietaryPreferences: []string{"vegan"},
		HouseholdSize:      0, // clamped to 1
		CookingSkillLevel:  "wizard",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.HouseholdSize)
	assert.Equal(t, models.SkillBeginner, created.CookingSkillLevel)

	updated, err := svc.Upsert(&models.Profile{
		UserID:            user.ID,
		Allergies:         []string{"peanuts"},
		HouseholdSize:     3,
		CookingSkillLevel: models.SkillAdvanced,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "upsert must update in place, not duplicate")
	assert.Equal(t, 3, updated.HouseholdSize)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
