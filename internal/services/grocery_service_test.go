package services

import (
	"testing"
	"time"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGroceryService(db *gorm.DB) GroceryService {
	plans := newPlanService(db)
	return NewGroceryService(db, plans, NewMealService(db))
}

// seedPlanWithFlourMeals builds a plan with two meals that both use flour,
// in different amounts.
func seedPlanWithFlourMeals(t *testing.T, db *gorm.DB, userID uint) *models.MealPlan {
	flour := createTestIngredient(t, db, "flour", "Baking", "cup")

	pancakes := createTestMeal(t, db, "Pancakes", 4)
	addRecipeLine(t, db, pancakes.ID, flour.ID, 2, "cups")
	bread := createTestMeal(t, db, "Bread", 4)
	addRecipeLine(t, db, bread.ID, flour.ID, 1, "cup")

	svc := newPlanService(db)
	plan, err := svc.CreatePlan(userID, time.Time{}, "")
	require.NoError(t, err)
	_, err = svc.AddItem(userID, plan.ID, PlanItemRequest{MealID: pancakes.ID, DayOfWeek: 0})
	require.NoError(t, err)
	_, err = svc.AddItem(userID, plan.ID, PlanItemRequest{MealID: bread.ID, DayOfWeek: 1})
	require.NoError(t, err)
	return plan
}

func TestGenerateFromPlanNoMerging(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "flour@example.com")
	plan := seedPlanWithFlourMeals(t, db, user.ID)

	svc := newGroceryService(db)
	list, err := svc.GenerateFromPlan(user.ID, plan.ID)
	require.NoError(t, err)

	assert.Equal(t, "Grocery List - "+plan.Title, list.Title)
	require.NotNil(t, list.MealPlanID)
	assert.Equal(t, plan.ID, *list.MealPlanID)

	// Two flour lines: one per meal, in plan-item order, never merged
	require.Len(t, list.Items, 2)
	assert.Equal(t, float64(2), *list.Items[0].Amount)
	assert.Equal(t, float64(1), *list.Items[1].Amount)

	groups, err := svc.GroupedItems(user.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Baking", groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
}

func TestGenerateFromPlanErrors(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "errors@example.com")
	svc := newGroceryService(db)

	t.Run("missing plan", func(t *testing.T) {
		_, err := svc.GenerateFromPlan(user.ID, 404)
		assert.ErrorIs(t, err, ErrNoMealPlan)
	})

	t.Run("plan without items", func(t *testing.T) {
		plan, err := newPlanService(db).CreatePlan(user.ID, time.Time{}, "")
		require.NoError(t, err)

		_, err = svc.GenerateFromPlan(user.ID, plan.ID)
		assert.ErrorIs(t, err, ErrPlanEmpty)

		// The failed generation must not leave an empty list behind
		var lists int64
		require.NoError(t, db.Model(&models.GroceryList{}).Count(&lists).Error)
		assert.Zero(t, lists)
	})
}

func TestToggleItemRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "toggle@example.com")
	plan := seedPlanWithFlourMeals(t, db, user.ID)
	svc := newGroceryService(db)
	list, err := svc.GenerateFromPlan(user.ID, plan.ID)
	require.NoError(t, err)
	original := list.Items[0]

	checked, err := svc.ToggleItem(user.ID, original.ID, true)
	require.NoError(t, err)
	assert.True(t, checked.IsChecked)

	// The flag must be durable, not just echoed back
	var persisted models.GroceryListItem
	require.NoError(t, db.First(&persisted, original.ID).Error)
	assert.True(t, persisted.IsChecked)

	restored, err := svc.ToggleItem(user.ID, original.ID, false)
	require.NoError(t, err)
	assert.False(t, restored.IsChecked)
	assert.Equal(t, original.Amount, restored.Amount)
	assert.Equal(t, original.IngredientID, restored.IngredientID)
}

func TestToggleItemForeignUser(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")
	plan := seedPlanWithFlourMeals(t, db, user.ID)
	svc := newGroceryService(db)
	list, err := svc.GenerateFromPlan(user.ID, plan.ID)
	require.NoError(t, err)

	_, err = svc.ToggleItem(intruder.ID, list.Items[0].ID, true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExportSkipsCheckedAndNamesFile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "export@example.com")
	plan := seedPlanWithFlourMeals(t, db, user.ID)
	svc := newGroceryService(db)
	list, err := svc.GenerateFromPlan(user.ID, plan.ID)
	require.NoError(t, err)

	_, err = svc.ToggleItem(user.ID, list.Items[0].ID, true)
	require.NoError(t, err)

	now := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	export, err := svc.Export(user.ID, list.ID, now)
	require.NoError(t, err)

	assert.Contains(t, export.Content, list.Title)
	assert.Contains(t, export.Content, "Generated on: 3/4/2024")
	assert.Contains(t, export.Content, "• flour 1 cup")
	assert.NotContains(t, export.Content, "2 cups", "checked line must not be exported")
	assert.Regexp(t, `^[a-z0-9_]+\.txt$`, export.Filename)
}

func TestDeleteListRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "dellist@example.com")
	plan := seedPlanWithFlourMeals(t, db, user.ID)
	svc := newGroceryService(db)
	list, err := svc.GenerateFromPlan(user.ID, plan.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteList(user.ID, list.ID))

	var items int64
	require.NoError(t, db.Model(&models.GroceryListItem{}).Where("grocery_list_id = ?", list.ID).Count(&items).Error)
	assert.Zero(t, items)

	_, err = svc.GetList(user.ID, list.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteSingleItem(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "delitem@example.com")
	plan := seedPlanWithFlourMeals(t, db, user.ID)
	svc := newGroceryService(db)
	list, err := svc.GenerateFromPlan(user.ID, plan.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(user.ID, list.Items[0].ID))

	refreshed, err := svc.GetList(user.ID, list.ID)
	require.NoError(t, err)
	assert.Len(t, refreshed.Items, 1)
}
