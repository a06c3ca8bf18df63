package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/resume"
)

type ResumeHandler struct {
	resumeUseCase *resume.ResumeUseCase
}

func NewResumeHandler(resumeUseCase *resume.ResumeUseCase) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase: resumeUseCase,
	}
}

type UploadResumeResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

// UploadResume handles POST /api/upload-resume
// @Summary Extract text from a PDF resume
// @Description Accept a multipart upload and return its extracted text
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF resume"
// @Success 200 {object} UploadResumeResponse
// @Failure 400 {object} FailureResponse
// @Failure 500 {object} FailureResponse
// @Router /api/upload-resume [post]
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, FailureResponse{
			Success: false,
			Error:   "No file uploaded",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		fmt.Printf("Upload error: %v\n", err)
		c.JSON(http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "Failed to read file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		fmt.Printf("Upload error: %v\n", err)
		c.JSON(http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "Failed to read file",
		})
		return
	}

	text, err := h.resumeUseCase.ExtractText(data)
	if err != nil {
		fmt.Printf("PDF extraction error: %v\n", err)
		c.JSON(http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "Failed to extract text from PDF",
		})
		return
	}

	c.JSON(http.StatusOK, UploadResumeResponse{
		Success: true,
		Text:    text,
	})
}
