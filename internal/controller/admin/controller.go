// Package admin provides HTTP handlers reserved for administrator accounts.
package admin

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"wagehire-backend/internal/controller/interview"
	"wagehire-backend/internal/database"
	"wagehire-backend/internal/model"
	"wagehire-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController handles administrator endpoints
type AdminController struct {
	DB *database.DBinstanceStruct
}

// NewAdminController creates a new instance of AdminController
func NewAdminController(db *database.DBinstanceStruct) *AdminController {
	return &AdminController{
		DB: db,
	}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GetUsers function query users from the database based on given query "q" and "role"
// @Summary Get users based on given query
// @Description Only admin can access this endpoints
// @Description If no query given, the server will return all users
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param q query string false "Search from email and name with substring matching and case insensitive"
// @Param role query string false "Role field, must exactly match to get result" example(candidate)
// @Success 200 {array} model.User
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/users [get]
func (ac *AdminController) GetUsers(c *gin.Context) {
	rawSearch := c.Query("q")
	rawRole := c.Query("role")

	result := ac.DB.Model(&model.User{})
	if rawSearch != "" {
		result = result.Where("email ILIKE ? OR name ILIKE ?", "%"+rawSearch+"%", "%"+rawSearch+"%")
	}
	if rawRole != "" {
		result = result.Where("role = ?", rawRole)
	}

	users := []model.User{}
	if err := result.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUserRole function allow admin to change role of given user id
// @Summary Change a user's role
// @Description Only admin can access this endpoints
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "User ID"
// @Param Role body object true "Body with role field, only admin or candidate allowed"
// @Success 200 {object} model.User
// @Failure 400 {object} utilities.ErrorResponse "Unknown role"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 404 {object} utilities.ErrorResponse "Given user ID not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/users/{id}/role [put]
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	body := struct {
		Role string `json:"role"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !utilities.Contains(model.ValidRoles, body.Role) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unknown role: %s", body.Role),
		})
		return
	}

	var user model.User
	err := ac.DB.Where("id = ?", userID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: fmt.Sprintf("%s does not exist in the database", userID),
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	user.Role = body.Role
	if err := ac.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update user information: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser function allow admin to delete a user that owns no interviews
// @Summary Delete a user
// @Description Only admin can access this endpoints
// @Description A user that still owns interview records cannot be deleted
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "User ID"
// @Success 200 {object} utilities.MessageResponse "Successfully delete user"
// @Failure 400 {object} utilities.ErrorResponse "User still owns interviews"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 404 {object} utilities.ErrorResponse "Given user ID not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/users/{id} [delete]
func (ac *AdminController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	var user model.User
	if err := ac.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: fmt.Sprintf("%s does not exist in the database", userID),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	var interviewCount int64
	if err := ac.DB.Model(&model.Interview{}).
		Where("candidate_id = ?", user.ID).
		Count(&interviewCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	if interviewCount > 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Cannot delete a user that still owns interviews",
		})
		return
	}

	if err := ac.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete user: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "User deleted"})
}

// GetInterviews function query every interview from the database, unscoped
// @Summary Get every interview based on given query
// @Description Only admin can access this endpoints
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Status field, must exactly match to get result"
// @Param company query string false "Search from company name with substring matching and case insensitive"
// @Param job_title query string false "Search from job title with substring matching and case insensitive"
// @Success 200 {array} model.Interview
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/interviews [get]
func (ac *AdminController) GetInterviews(c *gin.Context) {
	query := interview.ApplyInterviewFilters(c, ac.DB.Model(&model.Interview{}))

	interviews := []model.Interview{}
	if err := query.Preload("Feedback").Order("created_at DESC").Find(&interviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, interviews)
}

// Dashboard aggregates platform-wide numbers for the admin landing page.
// @Summary Get platform-wide dashboard statistics
// @Description Only admin can access this endpoints
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]interface{} "Dashboard statistics"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/dashboard [get]
func (ac *AdminController) Dashboard(c *gin.Context) {

	var totalUsers, totalCandidates, totalInterviews int64
	if err := ac.DB.Model(&model.User{}).Count(&totalUsers).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}
	if err := ac.DB.Model(&model.User{}).
		Where("role = ?", model.RoleCandidate).
		Count(&totalCandidates).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}
	if err := ac.DB.Model(&model.Interview{}).Count(&totalInterviews).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	byStatus := []statusCount{}
	if err := ac.DB.Model(&model.Interview{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	var completed int64
	for _, sc := range byStatus {
		if sc.Status == model.StatusCompleted {
			completed = sc.Count
		}
	}

	// Experience buckets are derived per candidate row in Go.
	candidates := []model.User{}
	if err := ac.DB.Where("role = ?", model.RoleCandidate).Find(&candidates).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}
	byExperience := map[string]int{}
	for i := range candidates {
		byExperience[candidates[i].ExperienceBucket()]++
	}

	now := time.Now()
	recentInterviews := []model.Interview{}
	if err := ac.DB.Where("created_at > ?", now.Add(-7*24*time.Hour)).
		Order("created_at DESC").
		Find(&recentInterviews).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	recentUsers := []model.User{}
	if err := ac.DB.Where("created_at > ?", now.Add(-30*24*time.Hour)).
		Order("created_at DESC").
		Find(&recentUsers).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	completionRate := 0
	if totalInterviews > 0 {
		completionRate = int(math.Round(float64(completed) * 100 / float64(totalInterviews)))
	}

	avgInterviewsPerUser := 0.0
	if totalUsers > 0 {
		avgInterviewsPerUser = math.Round(float64(totalInterviews)/float64(totalUsers)*10) / 10
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":              totalUsers,
		"total_candidates":         totalCandidates,
		"total_interviews":         totalInterviews,
		"interviews_by_status":     byStatus,
		"candidates_by_experience": byExperience,
		"recent_interviews":        recentInterviews,
		"recent_users":             recentUsers,
		"completion_rate":          completionRate,
		"avg_interviews_per_user":  avgInterviewsPerUser,
	})
}

// Reports aggregates interview and feedback breakdowns for reporting.
// @Summary Get interview and feedback reports
// @Description Only admin can access this endpoints
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]interface{} "Report breakdowns"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/reports [get]
func (ac *AdminController) Reports(c *gin.Context) {

	byStatus := []statusCount{}
	if err := ac.DB.Model(&model.Interview{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	type typeCount struct {
		InterviewType string `json:"interview_type"`
		Count         int64  `json:"count"`
	}
	byType := []typeCount{}
	if err := ac.DB.Model(&model.Interview{}).
		Select("interview_type, COUNT(*) AS count").
		Group("interview_type").
		Scan(&byType).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	type monthCount struct {
		Month string `json:"month"`
		Count int64  `json:"count"`
	}
	byMonth := []monthCount{}
	if err := ac.DB.Model(&model.Interview{}).
		Select("TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*) AS count").
		Group("month").
		Order("month ASC").
		Scan(&byMonth).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	type companyCount struct {
		CompanyName string `json:"company_name"`
		Count       int64  `json:"count"`
	}
	topCompanies := []companyCount{}
	if err := ac.DB.Model(&model.Interview{}).
		Select("company_name, COUNT(*) AS count").
		Group("company_name").
		Order("count DESC").
		Limit(10).
		Scan(&topCompanies).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	type recommendationCount struct {
		Recommendation string `json:"recommendation"`
		Count          int64  `json:"count"`
	}
	byRecommendation := []recommendationCount{}
	if err := ac.DB.Model(&model.InterviewFeedback{}).
		Select("recommendation, COUNT(*) AS count").
		Group("recommendation").
		Scan(&byRecommendation).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	type avgRatings struct {
		OverallRating       float64 `json:"overall_rating"`
		TechnicalRating     float64 `json:"technical_rating"`
		CommunicationRating float64 `json:"communication_rating"`
		DifficultyRating    float64 `json:"difficulty_rating"`
		ExperienceRating    float64 `json:"experience_rating"`
	}
	ratings := avgRatings{}
	if err := ac.DB.Model(&model.InterviewFeedback{}).
		Select(`COALESCE(AVG(overall_rating), 0) AS overall_rating,
			COALESCE(AVG(technical_rating), 0) AS technical_rating,
			COALESCE(AVG(communication_rating), 0) AS communication_rating,
			COALESCE(AVG(difficulty_rating), 0) AS difficulty_rating,
			COALESCE(AVG(experience_rating), 0) AS experience_rating`).
		Scan(&ratings).Error; err != nil {
		ac.dashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"interviews_by_status":  byStatus,
		"interviews_by_type":    byType,
		"interviews_by_month":   byMonth,
		"top_companies":         topCompanies,
		"recommendation_counts": byRecommendation,
		"average_ratings":       ratings,
	})
}

func (ac *AdminController) dashboardError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
		Error: fmt.Sprintf("Database error: %s", err.Error()),
	})
}
