package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platewise/gin-mealplan-api/internal/services"
)

type PlanController struct {
	planService services.PlanService
}

func NewPlanController(planService services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// ListPlans godoc
// @Summary List the user's meal plans, newest first
// @Tags Meal Plans
// @Produce json
// @Success 200 {array} models.MealPlan
// @Security BearerAuth
// @Router /api/v1/protected/plans [get]
func (pc *PlanController) ListPlans(c *gin.Context) {
	plans, err := pc.planService.ListPlans(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetCurrentPlan godoc
// @Summary Get the user's newest meal plan
// @Tags Meal Plans
// @Produce json
// @Success 200 {object} models.MealPlan
// @Failure 404 {object} map[string]string "No plan exists yet"
// @Security BearerAuth
// @Router /api/v1/protected/plans/current [get]
func (pc *PlanController) GetCurrentPlan(c *gin.Context) {
	plan, err := pc.planService.GetCurrentPlan(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetPlan godoc
// @Summary Get a meal plan with its scheduled meals
// @Tags Meal Plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} models.MealPlan
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/plans/{id} [get]
func (pc *PlanController) GetPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := pc.planService.GetPlan(c.GetUint("userID"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary Start an empty meal plan
// @Description Omitted week_start defaults to the most recent Sunday, omitted title to "Week of <date>"
// @Tags Meal Plans
// @Accept json
// @Produce json
// @Param plan body object{week_start=string,title=string} false "Plan details, week_start as YYYY-MM-DD"
// @Success 201 {object} models.MealPlan
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/plans [post]
func (pc *PlanController) CreatePlan(c *gin.Context) {
	var req struct {
		WeekStart string `json:"week_start"`
		Title     string `json:"title"`
	}

	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var weekStart time.Time
	if req.WeekStart != "" {
		parsed, err := time.Parse("2006-01-02", req.WeekStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_week_start"})
			return
		}
		weekStart = parsed
	}

	plan, err := pc.planService.CreatePlan(c.GetUint("userID"), weekStart, req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GeneratePlan godoc
// @Summary Generate a week of dinners from the user's preferences
// @Description Picks up to seven meals matching the profile's dietary preferences, one per day starting Sunday
// @Tags Meal Plans
// @Produce json
// @Success 201 {object} models.MealPlan
// @Failure 400 {object} map[string]string "Profile required"
// @Security BearerAuth
// @Router /api/v1/protected/plans/generate [post]
func (pc *PlanController) GeneratePlan(c *gin.Context) {
	plan, err := pc.planService.GeneratePlan(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// AddItem godoc
// @Summary Schedule a meal on a plan
// @Tags Meal Plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param item body services.PlanItemRequest true "Meal, day and servings"
// @Success 201 {object} models.MealPlanItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/plans/{id}/items [post]
func (pc *PlanController) AddItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.PlanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := pc.planService.AddItem(c.GetUint("userID"), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItem godoc
// @Summary Remove a scheduled meal from a plan
// @Tags Meal Plans
// @Produce json
// @Param itemId path int true "Plan item ID"
// @Success 204 "Item removed"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/plans/items/{itemId} [delete]
func (pc *PlanController) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := pc.planService.RemoveItem(c.GetUint("userID"), itemID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// DeletePlan godoc
// @Summary Delete a meal plan and its scheduled meals
// @Tags Meal Plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 204 "Plan deleted"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/plans/{id} [delete]
func (pc *PlanController) DeletePlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := pc.planService.DeletePlan(c.GetUint("userID"), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
