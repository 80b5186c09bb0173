package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Recommendation constants for InterviewFeedback.Recommendation
var (
	RecommendationHire   = "hire"
	RecommendationReject = "reject"
	RecommendationMaybe  = "maybe"
)

// ValidRecommendations lists every recommendation the server accepts
var ValidRecommendations = []string{RecommendationHire, RecommendationReject, RecommendationMaybe}

// InterviewFeedback is gorm model for store the candidate's post-interview
// feedback. At most one row may exist per (interview_id, candidate_id),
// enforced by a unique index.
type InterviewFeedback struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	InterviewID uint      `gorm:"not null;uniqueIndex:idx_feedback_once;<-:create" json:"interview_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_once;<-:create" json:"candidate_id"`

	OverallRating       int `gorm:"not null" json:"overall_rating"`
	TechnicalRating     int `gorm:"not null" json:"technical_rating"`
	CommunicationRating int `gorm:"not null" json:"communication_rating"`
	DifficultyRating    int `gorm:"not null" json:"difficulty_rating"`
	ExperienceRating    int `gorm:"not null" json:"experience_rating"`

	FeedbackText   string `gorm:"type:text" json:"feedback_text"`
	Recommendation string `gorm:"type:text;not null" json:"recommendation"`

	ReceivedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"received_at"`
}

// Validate checks rating bounds and the recommendation enum, returning one
// message per offending field.
func (f *InterviewFeedback) Validate() []string {
	var errs []string

	ratings := []struct {
		name  string
		value int
	}{
		{"overall_rating", f.OverallRating},
		{"technical_rating", f.TechnicalRating},
		{"communication_rating", f.CommunicationRating},
		{"difficulty_rating", f.DifficultyRating},
		{"experience_rating", f.ExperienceRating},
	}
	for _, r := range ratings {
		if r.value < 1 || r.value > 5 {
			errs = append(errs, fmt.Sprintf("%s must be between 1 and 5", r.name))
		}
	}

	if !contains(ValidRecommendations, f.Recommendation) {
		errs = append(errs, "recommendation must be one of: hire, reject, maybe")
	}

	return errs
}
