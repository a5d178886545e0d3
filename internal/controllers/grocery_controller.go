package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platewise/gin-mealplan-api/internal/services"
)

type GroceryController struct {
	groceryService services.GroceryService
}

func NewGroceryController(groceryService services.GroceryService) *GroceryController {
	return &GroceryController{groceryService: groceryService}
}

// ListLists godoc
// @Summary List the user's grocery lists, newest first
// @Tags Grocery Lists
// @Produce json
// @Success 200 {array} models.GroceryList
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists [get]
func (gc *GroceryController) ListLists(c *gin.Context) {
	lists, err := gc.groceryService.ListLists(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// GetList godoc
// @Summary Get a grocery list with its items
// @Tags Grocery Lists
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} models.GroceryList
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/{id} [get]
func (gc *GroceryController) GetList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := gc.groceryService.GetList(c.GetUint("userID"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetGroupedItems godoc
// @Summary Get a list's items grouped by store category
// @Description Categories appear in the order they are first encountered; uncategorized ingredients fall under "Other"
// @Tags Grocery Lists
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {array} grocery.CategoryGroup
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/{id}/grouped [get]
func (gc *GroceryController) GetGroupedItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	groups, err := gc.groceryService.GroupedItems(c.GetUint("userID"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GenerateFromPlan godoc
// @Summary Build a grocery list from a meal plan
// @Description One list item per recipe line of every scheduled meal; duplicate ingredients are kept as separate lines
// @Tags Grocery Lists
// @Accept json
// @Produce json
// @Param request body object{plan_id=int} true "Source plan"
// @Success 201 {object} models.GroceryList
// @Failure 400 {object} map[string]string "Plan has no meals"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/generate [post]
func (gc *GroceryController) GenerateFromPlan(c *gin.Context) {
	var req struct {
		PlanID uint `json:"plan_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := gc.groceryService.GenerateFromPlan(c.GetUint("userID"), req.PlanID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

// ToggleItem godoc
// @Summary Check or uncheck a grocery item
// @Description The new state is persisted before it is returned
// @Tags Grocery Lists
// @Accept json
// @Produce json
// @Param itemId path int true "Item ID"
// @Param request body object{is_checked=bool} true "New checked state"
// @Success 200 {object} models.GroceryListItem
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/items/{itemId} [patch]
func (gc *GroceryController) ToggleItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req struct {
		IsChecked *bool `json:"is_checked" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := gc.groceryService.ToggleItem(c.GetUint("userID"), itemID, *req.IsChecked)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Remove a single item from a grocery list
// @Tags Grocery Lists
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 204 "Item removed"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/items/{itemId} [delete]
func (gc *GroceryController) DeleteItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := gc.groceryService.DeleteItem(c.GetUint("userID"), itemID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// DeleteList godoc
// @Summary Delete a grocery list and its items
// @Tags Grocery Lists
// @Produce json
// @Param id path int true "List ID"
// @Success 204 "List deleted"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/{id} [delete]
func (gc *GroceryController) DeleteList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := gc.groceryService.DeleteList(c.GetUint("userID"), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ExportList godoc
// @Summary Download the unchecked items as a text file
// @Description Returns a plain-text shopping list named after the slugified list title
// @Tags Grocery Lists
// @Produce plain
// @Param id path int true "List ID"
// @Success 200 {string} string "Text export"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/grocery-lists/{id}/export [get]
func (gc *GroceryController) ExportList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	export, err := gc.groceryService.Export(c.GetUint("userID"), id, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Content))
}
