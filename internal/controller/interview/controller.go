// Package interview provides HTTP handlers for interview tracking operations.
package interview

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"wagehire-backend/internal/database"
	"wagehire-backend/internal/model"
	"wagehire-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// InterviewController handles interview related endpoints
type InterviewController struct {
	DB *database.DBinstanceStruct
}

// NewInterviewController creates a new instance of InterviewController
func NewInterviewController(db *database.DBinstanceStruct) *InterviewController {
	return &InterviewController{
		DB: db,
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// scoped restricts a query to the caller's own interviews unless the caller
// is an admin. Ownership misses therefore surface as record-not-found.
func (ic *InterviewController) scoped(user model.User) *gorm.DB {
	query := ic.DB.Model(&model.Interview{})
	if user.Role != model.RoleAdmin {
		query = query.Where("candidate_id = ?", user.ID)
	}
	return query
}

// ApplyInterviewFilters narrows an interview query by the status, company and
// job_title request parameters. Status matches exactly, the other two are
// case-insensitive substring matches.
func ApplyInterviewFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if rawStatus := c.Query("status"); rawStatus != "" {
		query = query.Where("status = ?", rawStatus)
	}
	if rawCompany := c.Query("company"); rawCompany != "" {
		query = query.Where("company_name ILIKE ?", "%"+rawCompany+"%")
	}
	if rawJobTitle := c.Query("job_title"); rawJobTitle != "" {
		query = query.Where("job_title ILIKE ?", "%"+rawJobTitle+"%")
	}
	return query
}

// CreateInterview handles the creation of a new interview record.
// @Summary Create interview based on given json structure
// @Description The interview is always owned by the authenticated user
// @Tags Interview
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Interview body model.EditableInterviewInfo true "Input interview information"
// @Success 201 {object} model.Interview "Successfully create interview"
// @Failure 400 {object} utilities.ErrorResponse "Validation failed"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews [post]
func (ic *InterviewController) CreateInterview(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	interview := model.Interview{}
	if err := c.ShouldBindJSON(&interview.EditableInterviewInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	// A zero round on create means the field was absent from the body.
	if interview.RoundNumber == 0 {
		interview.RoundNumber = model.MinRound
	}

	interview.Normalize()
	if errs := interview.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error:  "Validation failed",
			Errors: errs,
		})
		return
	}

	interview.CandidateID = user.ID
	if err := ic.DB.Create(&interview).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create interview: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, interview)
}

// GetInterviews fetches the caller's interviews that match query parameters.
// @Summary Get interviews based on query
// @Description Candidates only see their own records, admins see everything
// @Tags Interview
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Status field, must exactly match to get result"
// @Param company query string false "Search from company name with substring matching and case insensitive"
// @Param job_title query string false "Search from job title with substring matching and case insensitive"
// @Success 200 {array} model.Interview "Return interview(s)"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews [get]
func (ic *InterviewController) GetInterviews(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	query := ApplyInterviewFilters(c, ic.scoped(user))

	interviews := []model.Interview{}
	if err := query.Preload("Feedback").Order("created_at DESC").Find(&interviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch interviews: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, interviews)
}

// GetInterviewByID fetches one interview owned by the caller.
// @Summary Get interview by ID
// @Description Requesting another user's interview responds 404, not 403
// @Tags Interview
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired interview"
// @Success 200 {object} model.Interview "Return the interview with the specified ID"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Interview not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/{id} [get]
func (ic *InterviewController) GetInterviewByID(c *gin.Context) {
	id := c.Param("id")

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	interview := model.Interview{}
	if err := ic.scoped(user).Preload("Feedback").Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve interview: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, interview)
}

// UpdateInterview applies a sparse patch to an interview owned by the caller.
// Absent fields keep their stored value; unknown fields are ignored. The
// merged record goes through the same validation as creation.
// @Summary Update interview based on given json structure
// @Description Fields absent from the body stay untouched
// @Tags Interview
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired interview"
// @Param Interview body model.InterviewPatch true "Fields to update"
// @Success 200 {object} model.Interview "Successfully update interview"
// @Failure 400 {object} utilities.ErrorResponse "Validation failed"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Interview not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/{id} [put]
func (ic *InterviewController) UpdateInterview(c *gin.Context) {
	id := c.Param("id")

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	interview := model.Interview{}
	if err := ic.scoped(user).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve interview: %s", err.Error()),
		})
		return
	}

	patch := model.InterviewPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	patch.Apply(&interview.EditableInterviewInfo)
	interview.Normalize()
	if errs := interview.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error:  "Validation failed",
			Errors: errs,
		})
		return
	}

	// Save writes every editable column, so a nil scheduled_date or duration
	// lands in the database as NULL.
	if err := ic.DB.Save(&interview).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update interview: %s", err.Error()),
		})
		return
	}

	if err := ic.DB.Preload("Feedback").Where("id = ?", interview.ID).First(&interview).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated interview: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, interview)
}

// DeleteInterview deletes an interview owned by the caller.
// @Summary Delete given interview ID
// @Description Deleting another user's interview responds 404
// @Tags Interview
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired interview"
// @Success 200 {object} utilities.MessageResponse "Successfully delete interview"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Interview not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/{id} [delete]
func (ic *InterviewController) DeleteInterview(c *gin.Context) {
	id := c.Param("id")

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	interview := model.Interview{}
	if err := ic.scoped(user).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve interview: %s", err.Error()),
		})
		return
	}

	if err := ic.DB.Delete(&interview).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete interview: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Interview deleted"})
}

// SubmitFeedback records post-interview feedback and marks the interview
// completed in the same transaction. One feedback per interview.
// @Summary Submit feedback for an interview
// @Description Feedback submission marks the interview as completed
// @Tags Interview
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired interview"
// @Param Feedback body model.InterviewFeedback true "Feedback content"
// @Success 201 {object} model.InterviewFeedback "Successfully submit feedback"
// @Failure 400 {object} utilities.ErrorResponse "Validation failed, or feedback already submitted"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Interview not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/{id}/feedback [post]
func (ic *InterviewController) SubmitFeedback(c *gin.Context) {
	id := c.Param("id")

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	interview := model.Interview{}
	if err := ic.scoped(user).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve interview: %s", err.Error()),
		})
		return
	}

	feedback := model.InterviewFeedback{}
	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if errs := feedback.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error:  "Validation failed",
			Errors: errs,
		})
		return
	}

	var existing int64
	if err := ic.DB.Model(&model.InterviewFeedback{}).
		Where("interview_id = ?", interview.ID).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to check existing feedback: %s", err.Error()),
		})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Feedback already submitted for this interview",
		})
		return
	}

	feedback.InterviewID = interview.ID
	feedback.CandidateID = interview.CandidateID

	txErr := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}
		return tx.Model(&model.Interview{}).
			Where("id = ?", interview.ID).
			Update("status", model.StatusCompleted).Error
	})
	if txErr != nil {
		// A concurrent submission can pass the count check first; the unique
		// index reports it here.
		if isUniqueViolation(txErr) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Feedback already submitted for this interview",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to submit feedback: %s", txErr.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// DashboardStats aggregates the caller's own interview numbers.
// @Summary Get the caller's dashboard statistics
// @Tags Dashboard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]interface{} "Dashboard statistics"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /dashboard/stats [get]
func (ic *InterviewController) DashboardStats(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	base := ic.DB.Model(&model.Interview{}).Where("candidate_id = ?", user.ID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to count interviews: %s", err.Error()),
		})
		return
	}

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	byStatus := []statusCount{}
	if err := base.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to group interviews: %s", err.Error()),
		})
		return
	}

	var completed int64
	for _, sc := range byStatus {
		if sc.Status == model.StatusCompleted {
			completed = sc.Count
		}
	}

	now := time.Now()
	upcoming := []model.Interview{}
	if err := base.Session(&gorm.Session{}).
		Where("scheduled_date BETWEEN ? AND ?", now, now.Add(7*24*time.Hour)).
		Where("status IN ?", []string{model.StatusScheduled, model.StatusConfirmed, model.StatusRescheduled}).
		Order("scheduled_date ASC").
		Find(&upcoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch upcoming interviews: %s", err.Error()),
		})
		return
	}

	completionRate := 0
	if total > 0 {
		completionRate = int((completed*100 + total/2) / total)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_interviews":    total,
		"by_status":           byStatus,
		"upcoming_interviews": upcoming,
		"completion_rate":     completionRate,
	})
}
