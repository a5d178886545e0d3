package services

import (
	"github.com/platewise/gin-mealplan-api/internal/models"
	"gorm.io/gorm"
)

// IngredientService manages the shared ingredient catalog (admin surface).
type IngredientService interface {
	ListIngredients() ([]models.Ingredient, error)
	CreateIngredient(ingredient *models.Ingredient) (*models.Ingredient, error)
	UpdateIngredient(ingredient *models.Ingredient) (*models.Ingredient, error)
	DeleteIngredient(id uint) error
}

type ingredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) ListIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) CreateIngredient(ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := s.db.Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := s.db.Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(id uint) error {
	return s.db.Delete(&models.Ingredient{}, id).Error
}
