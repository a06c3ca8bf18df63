package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/essay"
)

type EssayHandler struct {
	essayUseCase *essay.EssayUseCase
}

func NewEssayHandler(essayUseCase *essay.EssayUseCase) *EssayHandler {
	return &EssayHandler{
		essayUseCase: essayUseCase,
	}
}

type WriteEssayRequest struct {
	Email             string `json:"email" binding:"required"`
	ScholarshipPrompt string `json:"scholarship_prompt" binding:"required"`
}

type WriteEssayResponse struct {
	Success bool   `json:"success"`
	Essay   string `json:"essay"`
}

// WriteEssay handles POST /api/write-essay
// @Summary Generate a personal statement
// @Description Build a prompt from the stored profile and the topic, call the AI, clean the output
// @Tags essay
// @Accept json
// @Produce json
// @Param request body WriteEssayRequest true "Email and application topic"
// @Success 200 {object} WriteEssayResponse
// @Failure 400 {object} FailureResponse
// @Failure 404 {object} FailureResponse
// @Failure 500 {object} FailureResponse
// @Router /api/write-essay [post]
func (h *EssayHandler) WriteEssay(c *gin.Context) {
	var req WriteEssayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailureResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	fmt.Printf("Processing essay for: %s\n", req.Email)

	text, err := h.essayUseCase.WriteEssay(c.Request.Context(), req.Email, req.ScholarshipPrompt)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, FailureResponse{
				Success: false,
				Error:   "Profile not found.",
			})
			return
		}
		fmt.Printf("AI error: %v\n", err)
		c.JSON(http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "AI generation failed.",
		})
		return
	}

	c.JSON(http.StatusOK, WriteEssayResponse{
		Success: true,
		Essay:   text,
	})
}
