// Package user provides HTTP handlers for user profile operations.
package user

import (
	"fmt"
	"net/http"

	"wagehire-backend/internal/database"
	"wagehire-backend/internal/model"
	"wagehire-backend/internal/utilities"

	"github.com/gin-gonic/gin"
)

// UserController handles profile related endpoints
type UserController struct {
	DB *database.DBinstanceStruct
}

// NewUserController creates a new instance of UserController
func NewUserController(db *database.DBinstanceStruct) *UserController {
	return &UserController{
		DB: db,
	}
}

// GetProfile returns the caller's profile with its completion percentage.
// @Summary Get the caller's profile
// @Tags User
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.ProfileResponse "Profile with completion percentage"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /users/profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
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

// UpdateProfile applies a sparse patch to the caller's profile. Absent fields
// keep their stored value; unknown fields are ignored.
// @Summary Update the caller's profile based on given json structure
// @Description Fields absent from the body stay untouched
// @Tags User
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Profile body model.ProfilePatch true "Fields to update"
// @Success 200 {object} model.ProfileResponse "Successfully update profile"
// @Failure 400 {object} utilities.ErrorResponse "Validation failed"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/profile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	patch := model.ProfilePatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	if errs := patch.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error:  "Validation failed",
			Errors: errs,
		})
		return
	}

	patch.Apply(&user.EditableProfileInfo)

	if err := uc.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update profile: %s", err.Error()),
		})
		return
	}

	if err := uc.DB.Where("id = ?", user.ID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, model.ProfileResponse{
		User:              user,
		ProfileCompletion: user.ProfileCompletion(),
	})
}
