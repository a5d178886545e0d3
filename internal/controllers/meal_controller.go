package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/services"
)

const defaultMealLimit = 50

type MealController struct {
	mealService services.MealService
}

func NewMealController(mealService services.MealService) *MealController {
	return &MealController{mealService: mealService}
}

type mealRequest struct {
	Name            string                           `json:"name" binding:"required"`
	Description     string                           `json:"description"`
	PrepTime        int                              `json:"prep_time"`
	CookTime        int                              `json:"cook_time"`
	Servings        int                              `json:"servings"`
	DietaryTags     []string                         `json:"dietary_tags"`
	CuisineType     string                           `json:"cuisine_type"`
	DifficultyLevel string                           `json:"difficulty_level"`
	ImageURL        string                           `json:"image_url"`
	Ingredients     []services.MealIngredientRequest `json:"ingredients"`
}

// ListMeals godoc
// @Summary List catalog meals
// @Description List meals, optionally filtered by dietary tags
// @Tags Meals
// @Produce json
// @Param tags query string false "Comma-separated dietary tags; only meals sharing at least one are returned"
// @Success 200 {array} models.Meal
// @Security BearerAuth
// @Router /api/v1/protected/meals [get]
func (mc *MealController) ListMeals(c *gin.Context) {
	var preferences []string
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				preferences = append(preferences, tag)
			}
		}
	}

	meals, err := mc.mealService.ListMeals(preferences, defaultMealLimit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}

// GetMeal godoc
// @Summary Get a meal with its recipe lines
// @Tags Meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} models.Meal
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/meals/{id} [get]
func (mc *MealController) GetMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	meal, err := mc.mealService.GetMeal(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// CreateMeal godoc
// @Summary Add a meal to the catalog
// @Tags Meals
// @Accept json
// @Produce json
// @Param meal body mealRequest true "Meal details"
// @Success 201 {object} models.Meal
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/meals [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	meal := &models.Meal{
		Name:            req.Name,
		Description:     req.Description,
		PrepTime:        req.PrepTime,
		CookTime:        req.CookTime,
		Servings:        req.Servings,
		DietaryTags:     datatypes.NewJSONSlice(req.DietaryTags),
		CuisineType:     req.CuisineType,
		DifficultyLevel: req.DifficultyLevel,
		ImageURL:        req.ImageURL,
		UserID:          &userID,
	}

	created, err := mc.mealService.CreateMeal(meal, req.Ingredients)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateMeal godoc
// @Summary Update a meal's own fields
// @Tags Meals
// @Accept json
// @Produce json
// @Param id path int true "Meal ID"
// @Param meal body mealRequest true "Meal details"
// @Success 200 {object} models.Meal
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/meals/{id} [put]
func (mc *MealController) UpdateMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := mc.mealService.GetMeal(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canModifyMeal(c, existing) {
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.PrepTime = req.PrepTime
	existing.CookTime = req.CookTime
	existing.Servings = req.Servings
	existing.DietaryTags = datatypes.NewJSONSlice(req.DietaryTags)
	existing.CuisineType = req.CuisineType
	existing.DifficultyLevel = req.DifficultyLevel
	existing.ImageURL = req.ImageURL

	updated, err := mc.mealService.UpdateMeal(existing)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ReplaceIngredients godoc
// @Summary Replace a meal's recipe lines
// @Tags Meals
// @Accept json
// @Produce json
// @Param id path int true "Meal ID"
// @Param ingredients body []services.MealIngredientRequest true "Recipe lines"
// @Success 200 {object} models.Meal
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/meals/{id}/ingredients [put]
func (mc *MealController) ReplaceIngredients(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req []services.MealIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := mc.mealService.GetMeal(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canModifyMeal(c, existing) {
		return
	}

	meal, err := mc.mealService.ReplaceIngredients(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// DeleteMeal godoc
// @Summary Remove a meal from the catalog
// @Description Fails with 409 while any meal plan still schedules the meal
// @Tags Meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 204 "Meal deleted"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/meals/{id} [delete]
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	existing, err := mc.mealService.GetMeal(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canModifyMeal(c, existing) {
		return
	}

	if err := mc.mealService.DeleteMeal(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// canModifyMeal allows mutation by the meal's owner or an admin. Seeded
// catalog meals (no owner) are admin-only. On failure it writes a 403.
func canModifyMeal(c *gin.Context, meal *models.Meal) bool {
	if c.GetString("userRole") == "admin" {
		return true
	}
	if meal.UserID != nil && *meal.UserID == c.GetUint("userID") {
		return true
	}
	c.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "only the meal's owner or an admin can modify it"))
	return false
}
