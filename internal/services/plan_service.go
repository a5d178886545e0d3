package services

import (
	"fmt"
	"time"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/planner"
	"gorm.io/gorm"
)

// PlanItemRequest schedules one meal on a plan.
type PlanItemRequest struct {
	MealID    uint   `json:"meal_id" binding:"required"`
	DayOfWeek int    `json:"day_of_week"`
	MealType  string `json:"meal_type"`
	Servings  int    `json:"servings"`
	Notes     string `json:"notes"`
}

// PlanService manages weekly meal plans and their scheduled items.
type PlanService interface {
	ListPlans(userID uint) ([]models.MealPlan, error)
	// GetPlan returns the user's plan with items and meals preloaded
	GetPlan(userID, planID uint) (*models.MealPlan, error)
	// GetCurrentPlan resolves the user's newest plan by creation time
	GetCurrentPlan(userID uint) (*models.MealPlan, error)
	// CreatePlan starts an empty plan. A zero weekStart defaults to the
	// most recent Sunday and an empty title to "Week of <date>".
	CreatePlan(userID uint, weekStart time.Time, title string) (*models.MealPlan, error)
	// AddItem schedules a meal on a plan the user owns
	AddItem(userID, planID uint, req PlanItemRequest) (*models.MealPlanItem, error)
	RemoveItem(userID, itemID uint) error
	DeletePlan(userID, planID uint) error
	// GeneratePlan creates a plan and fills it with up to seven meals
	// matching the user's dietary preferences, one per day. The plan and
	// its items are committed together: a failed item insert leaves no
	// orphaned plan behind.
	GeneratePlan(userID uint) (*models.MealPlan, error)
}

type planService struct {
	db       *gorm.DB
	profiles ProfileService
	meals    MealService
}

func NewPlanService(db *gorm.DB, profiles ProfileService, meals MealService) PlanService {
	return &planService{db: db, profiles: profiles, meals: meals}
}

// candidateLimit bounds how much of the catalog generation considers.
const candidateLimit = 50

func (s *planService) ListPlans(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *planService) GetPlan(userID, planID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.
		Preload("Items.Meal").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planService) GetCurrentPlan(userID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.
		Preload("Items.Meal").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planService) CreatePlan(userID uint, weekStart time.Time, title string) (*models.MealPlan, error) {
	if weekStart.IsZero() {
		weekStart = startOfWeek(time.Now())
	}
	if title == "" {
		title = fmt.Sprintf("Week of %d/%d/%d", int(weekStart.Month()), weekStart.Day(), weekStart.Year())
	}

	plan := &models.MealPlan{
		UserID:        userID,
		WeekStartDate: weekStart,
		Title:         title,
	}
	if err := s.db.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) AddItem(userID, planID uint, req PlanItemRequest) (*models.MealPlanItem, error) {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}
	if req.MealType == "" {
		req.MealType = models.MealTypeDinner
	}
	if !models.ValidMealType(req.MealType) {
		return nil, ErrInvalidMealType
	}

	// The scheduled meal must exist; its servings are the default
	var meal models.Meal
	if err := s.db.First(&meal, req.MealID).Error; err != nil {
		return nil, err
	}
	if req.Servings == 0 {
		req.Servings = meal.Servings
	}
	if req.Servings < 1 {
		return nil, ErrInvalidServings
	}

	item := &models.MealPlanItem{
		MealPlanID: plan.ID,
		MealID:     meal.ID,
		DayOfWeek:  req.DayOfWeek,
		MealType:   req.MealType,
		Servings:   req.Servings,
		Notes:      req.Notes,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	item.Meal = meal
	return item, nil
}

func (s *planService) RemoveItem(userID, itemID uint) error {
	var item models.MealPlanItem
	err := s.db.
		Joins("JOIN meal_plans ON meal_plans.id = meal_plan_items.meal_plan_id").
		Where("meal_plan_items.id = ? AND meal_plans.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return err
	}
	return s.db.Delete(&models.MealPlanItem{}, item.ID).Error
}

func (s *planService) DeletePlan(userID, planID uint) error {
	var plan models.MealPlan
	if err := s.db.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", planID).Delete(&models.MealPlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MealPlan{}, planID).Error
	})
}

func (s *planService) GeneratePlan(userID uint) (*models.MealPlan, error) {
	profile, err := s.profiles.GetByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrProfileRequired
	}
	if err != nil {
		return nil, err
	}

	candidates, err := s.meals.ListMeals(nil, candidateLimit)
	if err != nil {
		return nil, err
	}

	weekStart := startOfWeek(time.Now())
	plan := &models.MealPlan{
		UserID:        userID,
		WeekStartDate: weekStart,
		Title:         fmt.Sprintf("Week of %d/%d/%d", int(weekStart.Month()), weekStart.Day(), weekStart.Year()),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		items, err := planner.Generate(profile, candidates, plan.ID)
		if err != nil {
			return err
		}
		// An empty catalog match is a valid "nothing to plan" outcome
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlan(userID, plan.ID)
}

// startOfWeek truncates t to the most recent Sunday at midnight.
func startOfWeek(t time.Time) time.Time {
	t = t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
