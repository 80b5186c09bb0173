package user

import (
	"context"
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

func profileEngine() *gin.Engine {
	r := gin.New()
	uc := NewUserController(testDB)
	grp := r.Group("/users", middleware.RequireAuth(testDB))
	{
		grp.GET("profile", uc.GetProfile)
		grp.PUT("profile", uc.UpdateProfile)
	}
	return r
}

func accessToken(t *testing.T, u model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, u.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	return token
}

func TestGetProfile(t *testing.T) {
	r := profileEngine()
	token := accessToken(t, database.TestCandidate1)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/users/profile", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	userBody := resp["user"].(map[string]interface{})
	assert.Equal(t, database.TestCandidate1.Email, userBody["email"])
	assert.NotNil(t, resp["profile_completion"])

	// Seeded candidate 1 has name, phone, experience and skills set: 4 of 6 fields
	assert.Equal(t, float64(66), resp["profile_completion"])
}

func TestGetProfile_NoToken(t *testing.T) {
	r := profileEngine()

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/users/profile", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_SparsePatch(t *testing.T) {
	r := profileEngine()
	token := accessToken(t, database.TestCandidate2)

	rec, resp := testutil.MakeJSONRequest(gin.H{"name": "Bob Renamed"}, token, r, "/users/profile", http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	userBody := resp["user"].(map[string]interface{})
	assert.Equal(t, "Bob Renamed", userBody["name"])
	// Absent fields keep their stored values
	assert.Equal(t, *database.TestCandidate2.CurrentPosition, userBody["current_position"])
	assert.Equal(t, *database.TestCandidate2.ExperienceYears, userBody["experience_years"])
}

func TestUpdateProfile_FillsCompletion(t *testing.T) {
	r := profileEngine()
	token := accessToken(t, database.TestCandidate2)

	body := gin.H{
		"phone":            "0123456789",
		"resume_url":       "https://example.com/resume.pdf",
		"current_position": "Senior Backend Engineer",
		"experience_years": 6.0,
		"skills":           []string{"Go", "Postgres"},
	}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/users/profile", http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(100), resp["profile_completion"])
}

func TestUpdateProfile_InvalidResumeURL(t *testing.T) {
	r := profileEngine()
	token := accessToken(t, database.TestCandidate1)

	rec, resp := testutil.MakeJSONRequest(gin.H{"resume_url": "not a url"}, token, r, "/users/profile", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", resp["error"])
	assert.Contains(t, fmt.Sprint(resp["errors"]), "resume_url")
}

func TestUpdateProfile_ExperienceOutOfRange(t *testing.T) {
	r := profileEngine()
	token := accessToken(t, database.TestCandidate1)

	rec, resp := testutil.MakeJSONRequest(gin.H{"experience_years": 120}, token, r, "/users/profile", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fmt.Sprint(resp["errors"]), "experience_years")
}

func TestUpdateProfile_BlankName(t *testing.T) {
	r := profileEngine()
	token := accessToken(t, database.TestCandidate1)

	rec, resp := testutil.MakeJSONRequest(gin.H{"name": "   "}, token, r, "/users/profile", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fmt.Sprint(resp["errors"]), "name")
}
