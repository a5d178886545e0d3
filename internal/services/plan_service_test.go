package services

import (
	"testing"
	"time"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlanService(db *gorm.DB) PlanService {
	return NewPlanService(db, NewProfileService(db), NewMealService(db))
}

func TestGeneratePlanRequiresProfile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "noprofile@example.com")

	_, err := newPlanService(db).GeneratePlan(user.ID)
	assert.ErrorIs(t, err, ErrProfileRequired)

	// No orphaned plan may be left behind
	var count int64
	require.NoError(t, db.Model(&models.MealPlan{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGeneratePlanFiltersByPreferences(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "veg@example.com")
	createTestProfile(t, db, user.ID, []string{"vegetarian"}, 2)

	mealA := createTestMeal(t, db, "Veggie Stir Fry", 4, "vegetarian")
	createTestMeal(t, db, "Keto Bowl", 4, "keto")
	mealC := createTestMeal(t, db, "GF Pasta", 4, "vegetarian", "gluten-free")

	plan, err := newPlanService(db).GeneratePlan(user.ID)
	require.NoError(t, err)
	require.Len(t, plan.Items, 2)

	assert.Equal(t, mealA.ID, plan.Items[0].MealID)
	assert.Equal(t, 0, plan.Items[0].DayOfWeek)
	assert.Equal(t, mealC.ID, plan.Items[1].MealID)
	assert.Equal(t, 1, plan.Items[1].DayOfWeek)
	for _, item := range plan.Items {
		assert.Equal(t, models.MealTypeDinner, item.MealType)
		// household of 2 caps the four-serving meals
		assert.Equal(t, 2, item.Servings)
	}
}

func TestGeneratePlanEmptyCatalogMatch(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "vegan@example.com")
	createTestProfile(t, db, user.ID, []string{"vegan"}, 3)
	createTestMeal(t, db, "Keto Bowl", 4, "keto")

	plan, err := newPlanService(db).GeneratePlan(user.ID)
	require.NoError(t, err)
	assert.Empty(t, plan.Items, "nothing qualifying should yield a plan with no items, not an error")
}

func TestGetCurrentPlanIsNewest(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "plans@example.com")

	older := &models.MealPlan{UserID: user.ID, Title: "old", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(older).Error)
	newer := &models.MealPlan{UserID: user.ID, Title: "new", CreatedAt: time.Now()}
	require.NoError(t, db.Create(newer).Error)

	current, err := newPlanService(db).GetCurrentPlan(user.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, current.ID)
}

func TestGetCurrentPlanNone(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "empty@example.com")

	_, err := newPlanService(db).GetCurrentPlan(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreatePlanDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "defaults@example.com")

	plan, err := newPlanService(db).CreatePlan(user.ID, time.Time{}, "")
	require.NoError(t, err)

	assert.Equal(t, time.Sunday, plan.WeekStartDate.Weekday())
	assert.Contains(t, plan.Title, "Week of ")
}

func TestAddItemValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "additem@example.com")
	meal := createTestMeal(t, db, "Tacos", 4)
	svc := newPlanService(db)
	plan, err := svc.CreatePlan(user.ID, time.Time{}, "")
	require.NoError(t, err)

	t.Run("rejects day outside 0..6", func(t *testing.T) {
		_, err := svc.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 7})
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("rejects unknown meal type", func(t *testing.T) {
		_, err := svc.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 1, MealType: "brunch"})
		assert.ErrorIs(t, err, ErrInvalidMealType)
	})

	t.Run("rejects missing meal", func(t *testing.T) {
		_, err := svc.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: 9999, DayOfWeek: 1})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("defaults type and servings", func(t *testing.T) {
		item, err := svc.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 2})
		require.NoError(t, err)
		assert.Equal(t, models.MealTypeDinner, item.MealType)
		assert.Equal(t, meal.Servings, item.Servings)
	})

	t.Run("allows duplicate day and type", func(t *testing.T) {
		_, err := svc.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 2})
		assert.NoError(t, err)
	})

	t.Run("rejects foreign plan", func(t *testing.T) {
		other := createTestUser(t, db, "other@example.com")
		_, err := svc.AddItem(other.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 1})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDeletePlanRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "delplan@example.com")
	meal := createTestMeal(t, db, "Curry", 4)
	svc := newPlanService(db)
	plan, err := svc.CreatePlan(user.ID, time.Time{}, "")
	require.NoError(t, err)
	_, err = svc.AddItem(user.ID, plan.ID, PlanItemRequest{MealID: meal.ID, DayOfWeek: 0})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlan(user.ID, plan.ID))

	var items int64
	require.NoError(t, db.Model(&models.MealPlanItem{}).Where("meal_plan_id = ?", plan.ID).Count(&items).Error)
	assert.Zero(t, items)
}
