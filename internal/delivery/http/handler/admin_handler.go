package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/admin"
)

type AdminHandler struct {
	adminUseCase *admin.AdminUseCase
}

func NewAdminHandler(adminUseCase *admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type PromoteRequest struct {
	Email string `json:"email" binding:"required"`
	PIN   string `json:"pin" binding:"required"`
}

// ListUsers handles GET /api/admin/users
// @Summary List all profiles
// @Description Return profile summaries, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} domain.ProfileSummary
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	summaries, err := h.adminUseCase.ListUsers(c.Request.Context())
	if err != nil {
		fmt.Printf("Database error: %v\n", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Database error",
		})
		return
	}

	if summaries == nil {
		summaries = []*domain.ProfileSummary{}
	}

	c.JSON(http.StatusOK, summaries)
}

// PromoteUser handles POST /api/admin/promote
// @Summary Promote a profile to premium
// @Description PIN-gated upgrade to premium friends-and-family
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PromoteRequest true "Email and admin PIN"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} FailureResponse
// @Failure 403 {object} FailureResponse
// @Failure 500 {object} FailureResponse
// @Router /api/admin/promote [post]
func (h *AdminHandler) PromoteUser(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailureResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	if err := h.adminUseCase.Promote(c.Request.Context(), req.Email, req.PIN); err != nil {
		if errors.Is(err, domain.ErrInvalidPIN) {
			c.JSON(http.StatusForbidden, FailureResponse{
				Success: false,
				Error:   "Wrong PIN!",
			})
			return
		}
		fmt.Printf("Database error: %v\n", err)
		c.JSON(http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
