package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/services"
)

type ProfileController struct {
	profileService services.ProfileService
}

func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string "No profile saved yet"
// @Security BearerAuth
// @Router /api/v1/protected/profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.profileService.GetByUserID(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile godoc
// @Summary Create or update the current user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body object{full_name=string,dietary_preferences=[]string,allergies=[]string,cooking_skill_level=string,household_size=int} true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/profile [put]
func (pc *ProfileController) UpsertProfile(c *gin.Context) {
	var req struct {
		FullName           string   `json:"full_name"`
		Email              string   `json:"email"`
		DietaryPreferences []string `json:"dietary_preferences"`
		Allergies          []string `json:"allergies"`
		CookingSkillLevel  string   `json:"cooking_skill_level"`
		HouseholdSize      int      `json:"household_size"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &models.Profile{
		UserID:             c.GetUint("userID"),
		FullName:           req.FullName,
		Email:              req.Email,
		DietaryPreferences: datatypes.NewJSONSlice(req.DietaryPreferences),
		Allergies:          datatypes.NewJSONSlice(req.Allergies),
		CookingSkillLevel:  req.CookingSkillLevel,
		HouseholdSize:      req.HouseholdSize,
	}

	saved, err := pc.profileService.Upsert(profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
