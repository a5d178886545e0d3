package services

import (
	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/planner"
	"gorm.io/gorm"
)

// MealIngredientRequest is one recipe line in a create/replace payload.
type MealIngredientRequest struct {
	IngredientID uint     `json:"ingredient_id" binding:"required"`
	Amount       *float64 `json:"amount"`
	Unit         *string  `json:"unit"`
	Notes        string   `json:"notes"`
}

// MealService manages the meal catalog and per-meal recipe lines.
type MealService interface {
	// ListMeals returns catalog meals, newest last, capped at limit.
	// When preferences is non-empty only meals whose dietary tags overlap
	// it are returned.
	ListMeals(preferences []string, limit int) ([]models.Meal, error)
	// GetMeal returns one meal with its ingredient lines preloaded
	GetMeal(id uint) (*models.Meal, error)
	// CreateMeal inserts a meal and its recipe lines in one transaction
	CreateMeal(meal *models.Meal, ingredients []MealIngredientRequest) (*models.Meal, error)
	// UpdateMeal updates the meal's own fields (not its recipe lines)
	UpdateMeal(meal *models.Meal) (*models.Meal, error)
	// DeleteMeal removes a meal and its recipe lines. Fails with
	// ErrMealInUse while any plan item references the meal.
	DeleteMeal(id uint) error
	// ReplaceIngredients swaps the meal's recipe lines for the given set
	ReplaceIngredients(mealID uint, ingredients []MealIngredientRequest) (*models.Meal, error)
	// IngredientsByMealIDs returns each meal's recipe lines keyed by meal
	// id, with Ingredient preloaded, preserving per-meal line order.
	IngredientsByMealIDs(mealIDs []uint) (map[uint][]models.MealIngredient, error)
}

type mealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) MealService {
	return &mealService{db: db}
}

func (s *mealService) ListMeals(preferences []string, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 20
	}
	var meals []models.Meal
	if err := s.db.Limit(limit).Find(&meals).Error; err != nil {
		return nil, err
	}
	if len(preferences) == 0 {
		return meals, nil
	}

	// Dietary tags live in a JSON column, so the overlap predicate runs
	// in-process rather than in SQL; it stays portable across sqlite and
	// postgres that way.
	filtered := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		if planner.MatchesPreferences(meal.DietaryTags, preferences) {
			filtered = append(filtered, meal)
		}
	}
	return filtered, nil
}

func (s *mealService) GetMeal(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.Preload("Ingredients.Ingredient").First(&meal, id).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *mealService) CreateMeal(meal *models.Meal, ingredients []MealIngredientRequest) (*models.Meal, error) {
	if meal.Servings < 1 {
		meal.Servings = 1
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return createMealIngredients(tx, meal.ID, ingredients)
	})
	if err != nil {
		return nil, err
	}
	return s.GetMeal(meal.ID)
}

func (s *mealService) UpdateMeal(meal *models.Meal) (*models.Meal, error) {
	if meal.Servings < 1 {
		meal.Servings = 1
	}
	if err := s.db.Omit("Ingredients").Save(meal).Error; err != nil {
		return nil, err
	}
	return s.GetMeal(meal.ID)
}

func (s *mealService) DeleteMeal(id uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		return err
	}

	// A meal referenced by a plan item cannot disappear from under the
	// plan; the invariant is enforced here rather than left to FK luck.
	var refs int64
	if err := s.db.Model(&models.MealPlanItem{}).Where("meal_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrMealInUse
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, id).Error
	})
}

func (s *mealService) ReplaceIngredients(mealID uint, ingredients []MealIngredientRequest) (*models.Meal, error) {
	if err := s.db.First(&models.Meal{}, mealID).Error; err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", mealID).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return createMealIngredients(tx, mealID, ingredients)
	})
	if err != nil {
		return nil, err
	}
	return s.GetMeal(mealID)
}

func (s *mealService) IngredientsByMealIDs(mealIDs []uint) (map[uint][]models.MealIngredient, error) {
	byMeal := make(map[uint][]models.MealIngredient, len(mealIDs))
	if len(mealIDs) == 0 {
		return byMeal, nil
	}

	var lines []models.MealIngredient
	err := s.db.
		Preload("Ingredient").
		Where("meal_id IN ?", mealIDs).
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		byMeal[line.MealID] = append(byMeal[line.MealID], line)
	}
	return byMeal, nil
}

func createMealIngredients(tx *gorm.DB, mealID uint, ingredients []MealIngredientRequest) error {
	for _, req := range ingredients {
		// Recipe lines must point at a real catalog ingredient
		if err := tx.First(&models.Ingredient{}, req.IngredientID).Error; err != nil {
			return err
		}
		line := models.MealIngredient{
			MealID:       mealID,
			IngredientID: req.IngredientID,
			Amount:       req.Amount,
			Unit:         req.Unit,
			Notes:        req.Notes,
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}
	}
	return nil
}
