package model

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Interview status constants
var (
	// StatusScheduled is the default status of a newly created interview
	StatusScheduled = "scheduled"
	// StatusConfirmed indicates the company confirmed the appointment
	StatusConfirmed = "confirmed"
	// StatusCompleted indicates the interview took place; set automatically on feedback submission
	StatusCompleted = "completed"
	// StatusCancelled indicates the interview will not take place
	StatusCancelled = "cancelled"
	// StatusUncertain indicates no date is pinned down yet; scheduled_date and duration are stored as NULL
	StatusUncertain = "uncertain"
	// StatusRescheduled indicates the appointment moved to a new date
	StatusRescheduled = "rescheduled"
)

// ValidStatuses lists every interview status the server accepts
var ValidStatuses = []string{
	StatusScheduled, StatusConfirmed, StatusCompleted,
	StatusCancelled, StatusUncertain, StatusRescheduled,
}

// ValidInterviewTypes lists every interview type the server accepts
var ValidInterviewTypes = []string{"technical", "hr", "final", "screening"}

// Duration and round bounds
const (
	MinDuration = 15
	MaxDuration = 480
	MinRound    = 1
	MaxRound    = 10
)

// EditableInterviewInfo is part of interview record that can be edited
type EditableInterviewInfo struct {
	CompanyName   string     `gorm:"type:text;not null" json:"company_name"`
	JobTitle      string     `gorm:"type:text;not null" json:"job_title"`
	ScheduledDate *time.Time `gorm:"type:timestamp" json:"scheduled_date"`
	// Duration is in minutes
	Duration      *int   `json:"duration"`
	Status        string `gorm:"type:text;default:'scheduled'" json:"status"`
	InterviewType string `gorm:"type:text" json:"interview_type"`
	RoundNumber   int    `gorm:"default:1" json:"round_number"`

	Location           *string        `gorm:"type:text" json:"location"`
	Notes              *string        `gorm:"type:text" json:"notes"`
	CompanyWebsite     *string        `gorm:"type:text" json:"company_website"`
	CompanyLinkedinURL *string        `gorm:"type:text" json:"company_linkedin_url"`
	OtherURLs          pq.StringArray `gorm:"type:text[]" json:"other_urls"`
	JobDescription     *string        `gorm:"type:text" json:"job_description"`
	SalaryRange        *string        `gorm:"type:text" json:"salary_range"`

	InterviewerName     *string `gorm:"type:text" json:"interviewer_name"`
	InterviewerEmail    *string `gorm:"type:text" json:"interviewer_email"`
	InterviewerPosition *string `gorm:"type:text" json:"interviewer_position"`
}

// Interview is gorm model for store interview record data in DB
type Interview struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"candidate_id"`
	Candidate   User      `gorm:"foreignKey:CandidateID;references:ID" json:"-"`
	EditableInterviewInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`

	Feedback *InterviewFeedback `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
}

// InterviewPatch carries the interview fields present in a PUT /interviews/:id
// body. Nil pointer means the field was absent and stays untouched; unknown
// fields in the payload are silently ignored.
type InterviewPatch struct {
	CompanyName   *string    `json:"company_name"`
	JobTitle      *string    `json:"job_title"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Duration      *int       `json:"duration"`
	Status        *string    `json:"status"`
	InterviewType *string    `json:"interview_type"`
	RoundNumber   *int       `json:"round_number"`

	Location           *string   `json:"location"`
	Notes              *string   `json:"notes"`
	CompanyWebsite     *string   `json:"company_website"`
	CompanyLinkedinURL *string   `json:"company_linkedin_url"`
	OtherURLs          *[]string `json:"other_urls"`
	JobDescription     *string   `json:"job_description"`
	SalaryRange        *string   `json:"salary_range"`

	InterviewerName     *string `json:"interviewer_name"`
	InterviewerEmail    *string `json:"interviewer_email"`
	InterviewerPosition *string `json:"interviewer_position"`
}

// Apply writes every present patch field onto the interview, field by field.
func (p *InterviewPatch) Apply(info *EditableInterviewInfo) {
	if p.CompanyName != nil {
		info.CompanyName = *p.CompanyName
	}
	if p.JobTitle != nil {
		info.JobTitle = *p.JobTitle
	}
	if p.ScheduledDate != nil {
		info.ScheduledDate = p.ScheduledDate
	}
	if p.Duration != nil {
		info.Duration = p.Duration
	}
	if p.Status != nil {
		info.Status = *p.Status
	}
	if p.InterviewType != nil {
		info.InterviewType = *p.InterviewType
	}
	if p.RoundNumber != nil {
		info.RoundNumber = *p.RoundNumber
	}
	if p.Location != nil {
		info.Location = p.Location
	}
	if p.Notes != nil {
		info.Notes = p.Notes
	}
	if p.CompanyWebsite != nil {
		info.CompanyWebsite = p.CompanyWebsite
	}
	if p.CompanyLinkedinURL != nil {
		info.CompanyLinkedinURL = p.CompanyLinkedinURL
	}
	if p.OtherURLs != nil {
		info.OtherURLs = pq.StringArray(*p.OtherURLs)
	}
	if p.JobDescription != nil {
		info.JobDescription = p.JobDescription
	}
	if p.SalaryRange != nil {
		info.SalaryRange = p.SalaryRange
	}
	if p.InterviewerName != nil {
		info.InterviewerName = p.InterviewerName
	}
	if p.InterviewerEmail != nil {
		info.InterviewerEmail = p.InterviewerEmail
	}
	if p.InterviewerPosition != nil {
		info.InterviewerPosition = p.InterviewerPosition
	}
}

// Normalize trims the required text fields, fills the status default, and
// enforces the uncertain-status side effect: scheduled_date and duration
// become NULL no matter what the caller supplied alongside. RoundNumber is
// deliberately left alone: on update an explicit 0 must reach Validate and
// fail, so only the create path defaults it.
func (i *EditableInterviewInfo) Normalize() {
	i.CompanyName = strings.TrimSpace(i.CompanyName)
	i.JobTitle = strings.TrimSpace(i.JobTitle)

	if i.Status == "" {
		i.Status = StatusScheduled
	}
	if i.Status == StatusUncertain {
		i.ScheduledDate = nil
		i.Duration = nil
	}
}

// Validate checks the full interview contract and returns one message per
// offending field. Call Normalize first.
func (i *EditableInterviewInfo) Validate() []string {
	var errs []string

	if i.CompanyName == "" {
		errs = append(errs, "company_name is required")
	}
	if i.JobTitle == "" {
		errs = append(errs, "job_title is required")
	}
	if !contains(ValidStatuses, i.Status) {
		errs = append(errs, fmt.Sprintf("status must be one of: %s", strings.Join(ValidStatuses, ", ")))
	}
	if !contains(ValidInterviewTypes, i.InterviewType) {
		errs = append(errs, fmt.Sprintf("interview_type must be one of: %s", strings.Join(ValidInterviewTypes, ", ")))
	}
	if i.RoundNumber < MinRound || i.RoundNumber > MaxRound {
		errs = append(errs, fmt.Sprintf("round_number must be between %d and %d", MinRound, MaxRound))
	}

	if i.Status != StatusUncertain {
		if i.ScheduledDate == nil {
			errs = append(errs, "scheduled_date is required unless status is uncertain")
		}
		if i.Duration == nil {
			errs = append(errs, "duration is required unless status is uncertain")
		} else if *i.Duration < MinDuration || *i.Duration > MaxDuration {
			errs = append(errs, fmt.Sprintf("duration must be between %d and %d minutes", MinDuration, MaxDuration))
		}
	}

	if i.InterviewerEmail != nil && *i.InterviewerEmail != "" {
		if _, err := mail.ParseAddress(*i.InterviewerEmail); err != nil {
			errs = append(errs, "interviewer_email must be a valid email address")
		}
	}

	return errs
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
