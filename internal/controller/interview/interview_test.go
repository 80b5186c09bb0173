package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"wagehire-backend/internal/auth"
	"wagehire-backend/internal/database"
	"wagehire-backend/internal/middleware"
	"wagehire-backend/internal/model"
	"wagehire-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardown func(context.Context) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func interviewEngine() *gin.Engine {
	r := gin.New()
	ic := NewInterviewController(testDB)
	grp := r.Group("/interviews", middleware.RequireAuth(testDB))
	{
		grp.POST("", ic.CreateInterview)
		grp.GET("", ic.GetInterviews)
		grp.GET(":id", ic.GetInterviewByID)
		grp.PUT(":id", ic.UpdateInterview)
		grp.DELETE(":id", ic.DeleteInterview)
		grp.POST(":id/feedback", ic.SubmitFeedback)
	}
	r.GET("/dashboard/stats", middleware.RequireAuth(testDB), ic.DashboardStats)
	return r
}

func candidateToken(t *testing.T, u model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, u.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func validInterviewBody() gin.H {
	return gin.H{
		"company_name":   "Acme Corp",
		"job_title":      "Go Developer",
		"scheduled_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"duration":       60,
		"status":         "scheduled",
		"interview_type": "technical",
		"round_number":   2,
	}
}

func TestCreateInterview_Success(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, resp := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Acme Corp", resp["company_name"])
	assert.Equal(t, database.TestCandidate1.ID.String(), resp["candidate_id"])
	assert.Equal(t, float64(60), resp["duration"])
}

func TestCreateInterview_UncertainDropsDateAndDuration(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	body := validInterviewBody()
	body["status"] = "uncertain"

	rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Nil(t, resp["scheduled_date"])
	assert.Nil(t, resp["duration"])

	// Confirm the stored columns really are NULL
	var stored model.Interview
	assert.NoError(t, testDB.Where("id = ?", resp["id"]).First(&stored).Error)
	assert.Nil(t, stored.ScheduledDate)
	assert.Nil(t, stored.Duration)
}

func TestCreateInterview_MissingDate(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	body := validInterviewBody()
	delete(body, "scheduled_date")

	rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", resp["error"])
	assert.Contains(t, fmt.Sprint(resp["errors"]), "scheduled_date")
}

func TestCreateInterview_DurationOutOfRange(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	for _, duration := range []int{5, 481} {
		body := validInterviewBody()
		body["duration"] = duration

		rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews", http.MethodPost)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fmt.Sprint(resp["errors"]), "duration")
	}
}

func TestCreateInterview_RoundOutOfRange(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	for _, round := range []int{-1, 11} {
		body := validInterviewBody()
		body["round_number"] = round

		rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews", http.MethodPost)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fmt.Sprint(resp["errors"]), "round_number")
	}
}

func TestCreateInterview_BadType(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	body := validInterviewBody()
	body["interview_type"] = "vibe-check"

	rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fmt.Sprint(resp["errors"]), "interview_type")
}

func TestGetInterviews_ScopedToOwner(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate2)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/interviews", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var interviews []model.Interview
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &interviews))
	for _, iv := range interviews {
		assert.Equal(t, database.TestCandidate2.ID, iv.CandidateID)
	}
}

func TestGetInterviews_StatusFilter(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/interviews?status=uncertain", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var interviews []model.Interview
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &interviews))
	assert.NotEmpty(t, interviews)
	for _, iv := range interviews {
		assert.Equal(t, model.StatusUncertain, iv.Status)
	}
}

func TestGetInterviews_CompanyFilter(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/interviews?company=technova", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var interviews []model.Interview
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &interviews))
	assert.NotEmpty(t, interviews)
	for _, iv := range interviews {
		assert.Contains(t, iv.CompanyName, "TechNova")
	}
}

func TestGetInterviewByID_OtherUsersInterviewIs404(t *testing.T) {
	r := interviewEngine()
	// TestInterview3 belongs to candidate 2
	token := candidateToken(t, database.TestCandidate1)

	endpoint := fmt.Sprintf("/interviews/%d", database.TestInterview3.ID)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Interview not found", resp["error"])
}

func TestGetInterviewByID_AdminSeesEverything(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestAdminUser)

	endpoint := fmt.Sprintf("/interviews/%d", database.TestInterview3.ID)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, database.TestInterview3.CompanyName, resp["company_name"])
}

func TestUpdateInterview_SparsePatch(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	// Create a fresh interview to mutate
	rec, created := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	endpoint := fmt.Sprintf("/interviews/%v", created["id"])
	rec, resp := testutil.MakeJSONRequest(gin.H{"notes": "Bring portfolio"}, token, r, endpoint, http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Bring portfolio", resp["notes"])
	// Untouched fields survive
	assert.Equal(t, created["company_name"], resp["company_name"])
	assert.Equal(t, created["duration"], resp["duration"])
}

func TestUpdateInterview_UncertainOverridesSuppliedDate(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, created := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Supply a date and duration alongside uncertain; both must be dropped
	endpoint := fmt.Sprintf("/interviews/%v", created["id"])
	body := gin.H{
		"status":         "uncertain",
		"scheduled_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"duration":       90,
	}
	rec, resp := testutil.MakeJSONRequest(body, token, r, endpoint, http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.StatusUncertain, resp["status"])
	assert.Nil(t, resp["scheduled_date"])
	assert.Nil(t, resp["duration"])

	var stored model.Interview
	assert.NoError(t, testDB.Where("id = ?", created["id"]).First(&stored).Error)
	assert.Nil(t, stored.ScheduledDate)
	assert.Nil(t, stored.Duration)
}

func TestUpdateInterview_InvalidRound(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, created := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	endpoint := fmt.Sprintf("/interviews/%v", created["id"])
	// An explicit zero must be rejected, it is not treated as "use the default"
	for _, round := range []int{0, 99} {
		rec, resp := testutil.MakeJSONRequest(gin.H{"round_number": round}, token, r, endpoint, http.MethodPut)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fmt.Sprint(resp["errors"]), "round_number")
	}

	// The stored round is untouched by the rejected patches
	var stored model.Interview
	assert.NoError(t, testDB.Where("id = ?", created["id"]).First(&stored).Error)
	assert.Equal(t, 2, stored.RoundNumber)
}

func TestCreateInterview_DefaultRound(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	body := validInterviewBody()
	delete(body, "round_number")

	rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(model.MinRound), resp["round_number"])
}

func TestUpdateInterview_OtherUsersInterviewIs404(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	endpoint := fmt.Sprintf("/interviews/%d", database.TestInterview3.ID)
	rec, _ := testutil.MakeJSONRequest(gin.H{"notes": "sneaky"}, token, r, endpoint, http.MethodPut)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteInterview(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, created := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	endpoint := fmt.Sprintf("/interviews/%v", created["id"])
	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Interview deleted", resp["message"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func validFeedbackBody() gin.H {
	return gin.H{
		"overall_rating":       4,
		"technical_rating":     4,
		"communication_rating": 5,
		"difficulty_rating":    3,
		"experience_rating":    4,
		"feedback_text":        "Went well overall.",
		"recommendation":       "hire",
	}
}

func TestSubmitFeedback_MarksInterviewCompleted(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, created := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	endpoint := fmt.Sprintf("/interviews/%v/feedback", created["id"])
	rec, resp := testutil.MakeJSONRequest(validFeedbackBody(), token, r, endpoint, http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "hire", resp["recommendation"])

	var stored model.Interview
	assert.NoError(t, testDB.Where("id = ?", created["id"]).First(&stored).Error)
	assert.Equal(t, model.StatusCompleted, stored.Status)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_feedback_once"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("create failed: %w", dup)))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("create failed")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestSubmitFeedback_DuplicateIs400(t *testing.T) {
	r := interviewEngine()
	// TestInterview3 already carries seeded feedback
	token := candidateToken(t, database.TestCandidate2)

	endpoint := fmt.Sprintf("/interviews/%d/feedback", database.TestInterview3.ID)
	rec, resp := testutil.MakeJSONRequest(validFeedbackBody(), token, r, endpoint, http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Feedback already submitted")
}

func TestSubmitFeedback_BadRating(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	rec, created := testutil.MakeJSONRequest(validInterviewBody(), token, r, "/interviews", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := validFeedbackBody()
	body["overall_rating"] = 6

	endpoint := fmt.Sprintf("/interviews/%v/feedback", created["id"])
	rec, resp := testutil.MakeJSONRequest(body, token, r, endpoint, http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fmt.Sprint(resp["errors"]), "overall_rating")
}

func TestSubmitFeedback_OtherUsersInterviewIs404(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate1)

	endpoint := fmt.Sprintf("/interviews/%d/feedback", database.TestInterview3.ID)
	rec, _ := testutil.MakeJSONRequest(validFeedbackBody(), token, r, endpoint, http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardStats(t *testing.T) {
	r := interviewEngine()
	token := candidateToken(t, database.TestCandidate2)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/dashboard/stats", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, resp["total_interviews"])
	assert.NotNil(t, resp["by_status"])
	assert.NotNil(t, resp["completion_rate"])
	assert.GreaterOrEqual(t, resp["total_interviews"].(float64), float64(1))
}
