package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// SaveProfileResponse wraps the stored profile on success.
type SaveProfileResponse struct {
	Success bool                   `json:"success"`
	Profile *domain.StudentProfile `json:"profile"`
}

// SaveProfile handles POST /api/save-profile
// @Summary Save student profile
// @Description Insert or update the profile keyed by email
// @Tags profile
// @Accept json
// @Produce json
// @Param request body profile.SaveProfileRequest true "Profile fields"
// @Success 200 {object} SaveProfileResponse
// @Failure 400 {object} FailureResponse
// @Failure 500 {object} FailureResponse
// @Router /api/save-profile [post]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req profile.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailureResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	saved, err := h.profileUseCase.SaveProfile(c.Request.Context(), &req)
	if err != nil {
		fmt.Printf("Database error: %v\n", err)
		c.JSON(http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, SaveProfileResponse{
		Success: true,
		Profile: saved,
	})
}
