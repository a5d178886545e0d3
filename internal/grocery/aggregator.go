// Package grocery derives grocery-list lines from a meal plan's items and
// formats lists for export. All functions are pure; the services layer
// persists the results.
package grocery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/platewise/gin-mealplan-api/internal/models"
)

// Build emits one grocery line per (ingredient, amount, unit) tuple of
// every planned meal, in plan-item order then recipe order. Lines are not
// merged across meals and units are not converted: two meals that each
// need "2 cups flour" produce two lines. The drafts carry listID but are
// not persisted.
func Build(planItems []models.MealPlanItem, ingredientsByMeal map[uint][]models.MealIngredient, listID uint) []models.GroceryListItem {
	var items []models.GroceryListItem
	for _, planItem := range planItems {
		for _, mi := range ingredientsByMeal[planItem.MealID] {
			items = append(items, models.GroceryListItem{
				GroceryListID: listID,
				IngredientID:  mi.IngredientID,
				Amount:        mi.Amount,
				Unit:          mi.Unit,
				Ingredient:    mi.Ingredient,
			})
		}
	}
	return items
}

// CategoryGroup is one category bucket of a grouped grocery list.
type CategoryGroup struct {
	Category string                   `json:"category"`
	Items    []models.GroceryListItem `json:"items"`
}

// GroupByCategory partitions items by their ingredient's category,
// defaulting to "Other" when the category is empty. Groups appear in
// first-seen order and items keep their order within each group, so
// flattening the groups yields the input as a multiset.
func GroupByCategory(items []models.GroceryListItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, item := range items {
		category := item.Ingredient.Category
		if category == "" {
			category = models.DefaultCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// ExportText renders the unchecked items of a list as a plain-text blob:
// the list title, a generation date, and one bullet line per item with the
// amount and unit omitted when absent. Item order is preserved; checked
// items never appear.
func ExportText(items []models.GroceryListItem, listTitle string, now time.Time) string {
	var lines []string
	for _, item := range items {
		if item.IsChecked {
			continue
		}
		lines = append(lines, formatLine(item))
	}

	return fmt.Sprintf("%s\n\nGenerated on: %s\n\n%s",
		listTitle, formatDate(now), strings.Join(lines, "\n"))
}

func formatLine(item models.GroceryListItem) string {
	quantity := ""
	if item.Amount != nil {
		unit := ""
		if item.Unit != nil {
			unit = *item.Unit
		}
		quantity = strings.TrimSpace(strconv.FormatFloat(*item.Amount, 'f', -1, 64) + " " + unit)
	}
	return strings.TrimSpace("• " + item.Ingredient.Name + " " + quantity)
}

// formatDate matches the M/D/YYYY style the export has always used.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// Slugify lowercases a list title and replaces every non-alphanumeric
// character with an underscore, producing a safe download filename stem.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ExportFilename is the download name for a list's text export.
func ExportFilename(listTitle string) string {
	return Slugify(listTitle) + ".txt"
}
