package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/services"
)

// pathID parses a numeric path parameter. On failure it writes a 400 and
// returns false.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service sentinels onto HTTP statuses. Unknown
// errors pass through as 500 with their message intact.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "resource not found"))
	case errors.Is(err, services.ErrProfileRequired):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrProfileRequired, "complete your profile before generating a plan"))
	case errors.Is(err, services.ErrNoMealPlan):
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPlanNotFound, "no meal plan found"))
	case errors.Is(err, services.ErrMealInUse):
		c.JSON(http.StatusConflict, models.NewAPIError(models.ErrMealInUse, "meal is scheduled on a plan and cannot be deleted"))
	case errors.Is(err, services.ErrPlanEmpty):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrPlanEmpty, "meal plan has no scheduled meals"))
	case errors.Is(err, services.ErrInvalidDay),
		errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrInvalidServings):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
	}
}
