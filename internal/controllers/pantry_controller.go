package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/services"
)

type PantryController struct {
	pantryService services.PantryService
}

func NewPantryController(pantryService services.PantryService) *PantryController {
	return &PantryController{pantryService: pantryService}
}

// ListItems godoc
// @Summary List the user's pantry
// @Tags Pantry
// @Produce json
// @Success 200 {array} models.PantryItem
// @Security BearerAuth
// @Router /api/v1/protected/pantry [get]
func (pc *PantryController) ListItems(c *gin.Context) {
	items, err := pc.pantryService.ListItems(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddItem godoc
// @Summary Add an item to the pantry
// @Tags Pantry
// @Accept json
// @Produce json
// @Param item body services.PantryItemRequest true "Pantry item"
// @Success 201 {object} models.PantryItem
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/pantry [post]
func (pc *PantryController) AddItem(c *gin.Context) {
	var req services.PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := pantryItemFromRequest(c, &req)
	if !ok {
		return
	}

	created, err := pc.pantryService.AddItem(c.GetUint("userID"), item)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateItem godoc
// @Summary Update a pantry item
// @Tags Pantry
// @Accept json
// @Produce json
// @Param id path int true "Pantry item ID"
// @Param item body services.PantryItemRequest true "Pantry item"
// @Success 200 {object} models.PantryItem
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/pantry/{id} [put]
func (pc *PantryController) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.PantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := pantryItemFromRequest(c, &req)
	if !ok {
		return
	}
	item.ID = id

	updated, err := pc.pantryService.UpdateItem(c.GetUint("userID"), item)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteItem godoc
// @Summary Remove an item from the pantry
// @Tags Pantry
// @Produce json
// @Param id path int true "Pantry item ID"
// @Success 204 "Item removed"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/pantry/{id} [delete]
func (pc *PantryController) DeleteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := pc.pantryService.DeleteItem(c.GetUint("userID"), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func pantryItemFromRequest(c *gin.Context, req *services.PantryItemRequest) (*models.PantryItem, bool) {
	item := &models.PantryItem{
		IngredientID: req.IngredientID,
		Amount:       req.Amount,
		Unit:         req.Unit,
		Notes:        req.Notes,
	}

	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_expiry_date"})
			return nil, false
		}
		item.ExpiryDate = &expiry
	}

	return item, true
}
