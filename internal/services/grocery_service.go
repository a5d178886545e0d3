package services

import (
	"time"

	"github.com/platewise/gin-mealplan-api/internal/grocery"
	"github.com/platewise/gin-mealplan-api/internal/models"
	"gorm.io/gorm"
)

// GroceryExport is a rendered text export ready to be served as a
// downloadable attachment.
type GroceryExport struct {
	Filename string
	Content  string
}

// GroceryService derives grocery lists from meal plans and manages their
// items.
type GroceryService interface {
	ListLists(userID uint) ([]models.GroceryList, error)
	// GetList returns the user's list with items and ingredients preloaded
	GetList(userID, listID uint) (*models.GroceryList, error)
	// GenerateFromPlan builds a grocery list from every ingredient of
	// every meal on the plan. List and items are committed together: a
	// failed item insert leaves no empty list behind. Fails with
	// ErrPlanEmpty when the plan has no items.
	GenerateFromPlan(userID, planID uint) (*models.GroceryList, error)
	// GroupedItems returns the list's items bucketed by ingredient
	// category in first-seen order.
	GroupedItems(userID, listID uint) ([]grocery.CategoryGroup, error)
	// ToggleItem persists the checked flag and returns the updated item.
	// The write happens before anything is reported back, so a caller
	// never sees a checked state the store has not confirmed.
	ToggleItem(userID, itemID uint, checked bool) (*models.GroceryListItem, error)
	DeleteItem(userID, itemID uint) error
	DeleteList(userID, listID uint) error
	// Export renders the unchecked items as plain text, named after the
	// slugified list title.
	Export(userID, listID uint, now time.Time) (*GroceryExport, error)
}

type groceryService struct {
	db    *gorm.DB
	plans PlanService
	meals MealService
}

func NewGroceryService(db *gorm.DB, plans PlanService, meals MealService) GroceryService {
	return &groceryService{db: db, plans: plans, meals: meals}
}

func (s *groceryService) ListLists(userID uint) ([]models.GroceryList, error) {
	var lists []models.GroceryList
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (s *groceryService) GetList(userID, listID uint) (*models.GroceryList, error) {
	var list models.GroceryList
	err := s.db.
		Preload("Items.Ingredient").
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *groceryService) GenerateFromPlan(userID, planID uint) (*models.GroceryList, error) {
	plan, err := s.plans.GetPlan(userID, planID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNoMealPlan
	}
	if err != nil {
		return nil, err
	}
	if len(plan.Items) == 0 {
		return nil, ErrPlanEmpty
	}

	mealIDs := make([]uint, 0, len(plan.Items))
	for _, item := range plan.Items {
		mealIDs = append(mealIDs, item.MealID)
	}
	ingredientsByMeal, err := s.meals.IngredientsByMealIDs(mealIDs)
	if err != nil {
		return nil, err
	}

	planRef := plan.ID
	list := &models.GroceryList{
		UserID:     userID,
		MealPlanID: &planRef,
		Title:      "Grocery List - " + plan.Title,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		items := grocery.Build(plan.Items, ingredientsByMeal, list.ID)
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetList(userID, list.ID)
}

func (s *groceryService) GroupedItems(userID, listID uint) ([]grocery.CategoryGroup, error) {
	list, err := s.GetList(userID, listID)
	if err != nil {
		return nil, err
	}
	return grocery.GroupByCategory(list.Items), nil
}

func (s *groceryService) ToggleItem(userID, itemID uint, checked bool) (*models.GroceryListItem, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.GroceryListItem{}).
		Where("id = ?", item.ID).
		Update("is_checked", checked).Error; err != nil {
		return nil, err
	}

	item.IsChecked = checked
	return item, nil
}

func (s *groceryService) DeleteItem(userID, itemID uint) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.db.Delete(&models.GroceryListItem{}, item.ID).Error
}

func (s *groceryService) DeleteList(userID, listID uint) error {
	var list models.GroceryList
	if err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grocery_list_id = ?", listID).Delete(&models.GroceryListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GroceryList{}, listID).Error
	})
}

func (s *groceryService) Export(userID, listID uint, now time.Time) (*GroceryExport, error) {
	list, err := s.GetList(userID, listID)
	if err != nil {
		return nil, err
	}
	return &GroceryExport{
		Filename: grocery.ExportFilename(list.Title),
		Content:  grocery.ExportText(list.Items, list.Title, now),
	}, nil
}

// ownedItem loads a grocery item and verifies the list it belongs to is
// owned by userID.
func (s *groceryService) ownedItem(userID, itemID uint) (*models.GroceryListItem, error) {
	var item models.GroceryListItem
	err := s.db.
		Preload("Ingredient").
		Joins("JOIN grocery_lists ON grocery_lists.id = grocery_list_items.grocery_list_id").
		Where("grocery_list_items.id = ? AND grocery_lists.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
