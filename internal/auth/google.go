package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"wagehire-backend/internal/database"
	"wagehire-backend/internal/model"
	"wagehire-backend/internal/utilities"
)

// OauthLoginHandler holds dependencies for the Google sign-in flow.
type OauthLoginHandler struct {
	DB          *database.DBinstanceStruct
	Config      *oauth2.Config
	UserInfoURL string
}

// NewOauthLoginHandler creates a new instance of OauthLoginHandler.
func NewOauthLoginHandler(db *database.DBinstanceStruct, config *oauth2.Config, userInfoURL string) *OauthLoginHandler {
	return &OauthLoginHandler{
		DB:          db,
		Config:      config,
		UserInfoURL: userInfoURL,
	}
}

type googleUserInfo struct {
	GID       string `json:"sub"`
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
	Email     string `json:"email"`
}

func (oh *OauthLoginHandler) getUserInfo(c *gin.Context) (googleUserInfo, error) {
	var uInfo googleUserInfo

	var code struct {
		Code string `json:"code" binding:"required"`
	}

	// check does body has code
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("No authorization code provided: %s", err.Error()),
		})
		return uInfo, err
	}

	// Exchange code with google and get userinfo
	token, err := oh.Config.Exchange(context.Background(), code.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to receive token: %s", err.Error()),
		})
		return uInfo, err
	}

	client := oh.Config.Client(context.Background(), token)
	resp, err := client.Get(oh.UserInfoURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user information: %s", err.Error()),
		})
		return uInfo, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(&uInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to decode user info: %s", err.Error()),
		})
		return uInfo, err
	}
	return uInfo, nil
}

// GoogleLoginHandler signs a user in with a Google authorization code,
// registering them as a candidate on first contact. Registration goes through
// the same bootstrap transaction as local register, so a Google user who is
// the very first account still becomes admin.
// @Summary Login or register through Google OAuth
// @Tags Auth
// @Accept json
// @Produce json
// @Param Code body object true "Authorization code from Google consent screen"
// @Success 200 {object} model.UserResponse "Existing user logged in"
// @Success 201 {object} model.UserResponse "New user registered"
// @Failure 400 {object} utilities.ErrorResponse "Missing or rejected authorization code"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/google [post]
func (oh *OauthLoginHandler) GoogleLoginHandler(c *gin.Context) {
	uInfo, err := oh.getUserInfo(c)
	if err != nil {
		return
	}

	respStatus := http.StatusOK

	var user model.User
	err = oh.DB.Where("google_id = ?", uInfo.GID).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			Email:    strings.ToLower(uInfo.Email),
			GoogleID: uInfo.GID,
			EditableProfileInfo: model.EditableProfileInfo{
				Name: strings.TrimSpace(uInfo.FirstName + " " + uInfo.LastName),
			},
		}
		user.ID = uuid.New()

		status, rerr := registerUser(oh.DB, &user)
		if rerr != nil {
			LogAuthAttempt("warning", "Google", "Fail", user.Email, rerr.Error())
			c.JSON(status, utilities.ErrorResponse{Error: rerr.Error()})
			return
		}
		respStatus = http.StatusCreated

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("info", "Google", "Success", user.Email, "")
	c.JSON(respStatus, model.UserResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// Callback echoes the authorization code back so a browser flow can hand it to
// the frontend during local development.
func (oh *OauthLoginHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	c.JSON(http.StatusOK, gin.H{
		"code": code,
	})
}
