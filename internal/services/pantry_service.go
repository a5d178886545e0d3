package services

import (
	"github.com/platewise/gin-mealplan-api/internal/models"
	"gorm.io/gorm"
)

// PantryItemRequest is the payload for adding or updating a pantry item.
type PantryItemRequest struct {
	IngredientID uint     `json:"ingredient_id" binding:"required"`
	Amount       *float64 `json:"amount"`
	Unit         *string  `json:"unit"`
	ExpiryDate   *string  `json:"expiry_date"` // YYYY-MM-DD
	Notes        string   `json:"notes"`
}

// PantryService tracks what a user already has at home.
type PantryService interface {
	ListItems(userID uint) ([]models.PantryItem, error)
	AddItem(userID uint, item *models.PantryItem) (*models.PantryItem, error)
	UpdateItem(userID uint, item *models.PantryItem) (*models.PantryItem, error)
	DeleteItem(userID, itemID uint) error
}

type pantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) PantryService {
	return &pantryService{db: db}
}

func (s *pantryService) ListItems(userID uint) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *pantryService) AddItem(userID uint, item *models.PantryItem) (*models.PantryItem, error) {
	if err := s.db.First(&models.Ingredient{}, item.IngredientID).Error; err != nil {
		return nil, err
	}
	item.UserID = userID
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return s.getItem(userID, item.ID)
}

func (s *pantryService) UpdateItem(userID uint, item *models.PantryItem) (*models.PantryItem, error) {
	existing, err := s.getItem(userID, item.ID)
	if err != nil {
		return nil, err
	}
	item.UserID = existing.UserID
	item.CreatedAt = existing.CreatedAt
	if err := s.db.Omit("Ingredient").Save(item).Error; err != nil {
		return nil, err
	}
	return s.getItem(userID, item.ID)
}

func (s *pantryService) DeleteItem(userID, itemID uint) error {
	if _, err := s.getItem(userID, itemID); err != nil {
		return err
	}
	return s.db.Delete(&models.PantryItem{}, itemID).Error
}

func (s *pantryService) getItem(userID, itemID uint) (*models.PantryItem, error) {
	var item models.PantryItem
	err := s.db.
		Preload("Ingredient").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
