package models

import (
	"time"

	"gorm.io/datatypes"
)

// Cooking skill levels accepted on a profile
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Profile holds a user's meal-planning preferences. One per user.
type Profile struct {
	ID                 uint                        `gorm:"primaryKey" json:"id"`
	UserID             uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName           string                      `json:"full_name"`
	Email              string                      `json:"email"`
	DietaryPreferences datatypes.JSONSlice[string] `json:"dietary_preferences"`
	Allergies          datatypes.JSONSlice[string] `json:"allergies"`
	CookingSkillLevel  string                      `gorm:"default:'beginner'" json:"cooking_skill_level"`
	HouseholdSize      int                         `gorm:"default:1" json:"household_size"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

// ValidSkillLevel reports whether s is one of the accepted skill levels.
func ValidSkillLevel(s string) bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}
