package services

import (
	"testing"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Ingredient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.MealPlan{},
		&models.MealPlanItem{},
		&models.GroceryList{},
		&models.GroceryListItem{},
		&models.PantryItem{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{Email: email, Password: "hash", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProfile(t *testing.T, db *gorm.DB, userID uint, preferences []string, householdSize int) *models.Profile {
	profile := &models.Profile{
		UserID:             userID,
		DietaryPreferences: preferences,
		CookingSkillLevel:  models.SkillBeginner,
		HouseholdSize:      householdSize,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, category, unit string) *models.Ingredient {
	ingredient := &models.Ingredient{Name: name, Category: category, Unit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func createTestMeal(t *testing.T, db *gorm.DB, name string, servings int, tags ...string) *models.Meal {
	meal := &models.Meal{Name: name, Servings: servings, DietaryTags: tags}
	require.NoError(t, db.Create(meal).Error)
	return meal
}

func addRecipeLine(t *testing.T, db *gorm.DB, mealID, ingredientID uint, amount float64, unit string) {
	line := &models.MealIngredient{
		MealID:       mealID,
		IngredientID: ingredientID,
		Amount:       &amount,
		Unit:         &unit,
	}
	require.NoError(t, db.Create(line).Error)
}
