package services

import (
	"github.com/platewise/gin-mealplan-api/internal/models"
	"gorm.io/gorm"
)

// ProfileService manages the 1:1 user profile carrying dietary
// preferences, allergies and household size.
type ProfileService interface {
	// GetByUserID returns the user's profile, or gorm.ErrRecordNotFound
	GetByUserID(userID uint) (*models.Profile, error)
	// Upsert creates the profile on first save and updates it afterwards
	Upsert(profile *models.Profile) (*models.Profile, error)
}

type profileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) ProfileService {
	return &profileService{db: db}
}

func (s *profileService) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *profileService) Upsert(profile *models.Profile) (*models.Profile, error) {
	if profile.HouseholdSize < 1 {
		profile.HouseholdSize = 1
	}
	if !models.ValidSkillLevel(profile.CookingSkillLevel) {
		profile.CookingSkillLevel = models.SkillBeginner
	}

	var existing models.Profile
	err := s.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		if err := s.db.Create(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
