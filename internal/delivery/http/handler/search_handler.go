package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/search"
)

type SearchHandler struct {
	searchUseCase *search.SearchUseCase
}

func NewSearchHandler(searchUseCase *search.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
	}
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// Search handles POST /api/search
// @Summary Search scholarships
// @Description Forward a natural-language query to the AI search assistant
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search query"
// @Success 200 {object} object "upstream chat-completion body, unmodified"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	fmt.Printf("Searching for: %s\n", req.Query)

	result, err := h.searchUseCase.SearchScholarships(c.Request.Context(), req.Query)
	if err != nil {
		fmt.Printf("Search error: %v\n", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Search failed",
		})
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}
