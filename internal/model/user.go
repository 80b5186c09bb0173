// Package model contain gorm model for recording data to database
package model

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role constants for User.Role
var (
	// RoleAdmin is role for administrator, assigned to the very first registered user
	RoleAdmin = "admin"
	// RoleCandidate is role for candidate, assigned to every later registered user
	RoleCandidate = "candidate"
)

// ValidRoles lists every role the server accepts
var ValidRoles = []string{RoleAdmin, RoleCandidate}

// EditableProfileInfo is part of user profile that can be edited through PUT /users/profile
type EditableProfileInfo struct {
	Name            string         `gorm:"type:text" json:"name"`
	Phone           *string        `gorm:"type:text" json:"phone"`
	ResumeURL       *string        `gorm:"type:text" json:"resume_url"`
	CurrentPosition *string        `gorm:"type:text" json:"current_position"`
	ExperienceYears *float64       `json:"experience_years"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
}

// User is gorm model for store user account data in DB
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"type:text" json:"-"`
	GoogleID string    `gorm:"index" json:"-"`
	Role     string    `gorm:"type:text;not null;default:'candidate'" json:"role"`
	EditableProfileInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`

	Interviews []Interview `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProfilePatch carries the profile fields present in a PUT /users/profile body.
// Nil pointer means the field was absent from the request and stays untouched.
type ProfilePatch struct {
	Name            *string   `json:"name"`
	Phone           *string   `json:"phone"`
	ResumeURL       *string   `json:"resume_url"`
	CurrentPosition *string   `json:"current_position"`
	ExperienceYears *float64  `json:"experience_years"`
	Skills          *[]string `json:"skills"`
}

// Apply writes every present patch field onto the profile, field by field.
func (p *ProfilePatch) Apply(info *EditableProfileInfo) {
	if p.Name != nil {
		info.Name = *p.Name
	}
	if p.Phone != nil {
		info.Phone = p.Phone
	}
	if p.ResumeURL != nil {
		info.ResumeURL = p.ResumeURL
	}
	if p.CurrentPosition != nil {
		info.CurrentPosition = p.CurrentPosition
	}
	if p.ExperienceYears != nil {
		info.ExperienceYears = p.ExperienceYears
	}
	if p.Skills != nil {
		info.Skills = pq.StringArray(*p.Skills)
	}
}

// Validate checks format constraints on the supplied fields only.
func (p *ProfilePatch) Validate() []string {
	var errs []string

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if p.ExperienceYears != nil && (*p.ExperienceYears < 0 || *p.ExperienceYears > 80) {
		errs = append(errs, "experience_years must be between 0 and 80")
	}
	if p.ResumeURL != nil && *p.ResumeURL != "" {
		if u, err := url.Parse(*p.ResumeURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, "resume_url must be a valid http(s) URL")
		}
	}

	return errs
}

// ProfileCompletion returns the percentage of filled profile fields, rounded
// down to an integer.
func (u *User) ProfileCompletion() int {
	filled := 0
	total := 6

	if u.Name != "" {
		filled++
	}
	if u.Phone != nil && *u.Phone != "" {
		filled++
	}
	if u.ResumeURL != nil && *u.ResumeURL != "" {
		filled++
	}
	if u.CurrentPosition != nil && *u.CurrentPosition != "" {
		filled++
	}
	if u.ExperienceYears != nil {
		filled++
	}
	if len(u.Skills) > 0 {
		filled++
	}

	return filled * 100 / total
}

// ExperienceBucket derives the seniority bucket used by the admin dashboard.
func (u *User) ExperienceBucket() string {
	if u.ExperienceYears == nil {
		return "Entry Level"
	}
	years := *u.ExperienceYears
	switch {
	case years < 1:
		return "Entry Level"
	case years < 3:
		return "Junior"
	case years < 5:
		return "Mid Level"
	default:
		return "Senior"
	}
}

// UserResponse is response struct for auth endpoints, pairing the user with a fresh token
type UserResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// ProfileResponse is response struct for profile endpoints with completion percentage
type ProfileResponse struct {
	User              User `json:"user"`
	ProfileCompletion int  `json:"profile_completion"`
}
