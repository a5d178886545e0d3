package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/services"
)

// IngredientController manages the shared ingredient catalog. Writes are
// admin only; reads are open to any authenticated user.
type IngredientController struct {
	ingredientService services.IngredientService
}

func NewIngredientController(ingredientService services.IngredientService) *IngredientController {
	return &IngredientController{ingredientService: ingredientService}
}

type ingredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// ListIngredients godoc
// @Summary List catalog ingredients alphabetically
// @Tags Ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Security BearerAuth
// @Router /api/v1/protected/ingredients [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	ingredients, err := ic.ingredientService.ListIngredients()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// CreateIngredient godoc
// @Summary Add an ingredient to the catalog
// @Description An empty category defaults to "Other"
// @Tags Ingredients
// @Accept json
// @Produce json
// @Param ingredient body ingredientRequest true "Ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := ic.ingredientService.CreateIngredient(&models.Ingredient{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateIngredient godoc
// @Summary Update a catalog ingredient
// @Tags Ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body ingredientRequest true "Ingredient"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{id} [put]
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := ic.ingredientService.UpdateIngredient(&models.Ingredient{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteIngredient godoc
// @Summary Remove an ingredient from the catalog
// @Tags Ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 204 "Ingredient deleted"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{id} [delete]
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ic.ingredientService.DeleteIngredient(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
