package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"wagehire-backend/internal/database"
	"wagehire-backend/internal/model"
	"wagehire-backend/internal/utilities"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type registerInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler function handles registration by receiving email, password and name.
// The very first user ever inserted becomes admin; everyone after is a candidate.
// The count-then-insert runs in one SERIALIZABLE transaction so two concurrent
// first registrations can never both become admin.
// @Summary Register a new account with email, password and name
// @Description Email must not already exist and password must be longer or equal to 8 characters
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "Registration information"
// @Success 201 {object} model.UserResponse "Newly created user with access token"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) RegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email, password, and name must be provided",
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		ID:       uuid.New(),
		Email:    strings.ToLower(strings.TrimSpace(info.Email)),
		Password: hashedPassword,
		EditableProfileInfo: model.EditableProfileInfo{
			Name: strings.TrimSpace(info.Name),
		},
	}

	status, err := registerUser(lh.DB, &user)
	if err != nil {
		LogAuthAttempt("warning", "Local", "Fail", user.Email, err.Error())
		c.JSON(status, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("info", "Local", "Success", user.Email, "registered")
	c.JSON(http.StatusCreated, model.UserResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// registerUser inserts the user with the role derived from the current user
// count, inside a single serializable transaction. Returns an HTTP status and
// error when the insert must be rejected.
func registerUser(db *database.DBinstanceStruct, user *model.User) (int, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing model.User
		err := tx.Where("email = ?", user.Email).First(&existing).Error
		switch {
		case err == nil:
			return errEmailTaken
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Do nothing
		default:
			return err
		}

		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}

		user.Role = model.RoleCandidate
		if count == 0 {
			user.Role = model.RoleAdmin
		}

		return tx.Create(user).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	switch {
	case err == nil:
		return http.StatusCreated, nil
	case errors.Is(err, errEmailTaken):
		return http.StatusBadRequest, errEmailTaken
	default:
		return http.StatusInternalServerError, fmt.Errorf("Database error: %s", err.Error())
	}
}

var errEmailTaken = errors.New("Email already exist")

// LoginHandler function handles local login by receiving email and password.
// @Summary Handles local login by receiving email and password
// @Description Email must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} model.UserResponse "User with fresh access token"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Email not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}

	var user model.User
	err := lh.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(info.Email))).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAuthAttempt("warning", "Local", "Fail", info.Email, "unknown email")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
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

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt("warning", "Local", "Fail", user.Email, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
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

	LogAuthAttempt("info", "Local", "Success", user.Email, "")
	c.JSON(http.StatusOK, model.UserResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// ProfileHandler returns the authenticated user's own account row.
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /auth/profile [get]
func (lh *LocalAuthHandler) ProfileHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ProfileResponse{
		User:              user,
		ProfileCompletion: user.ProfileCompletion(),
	})
}
