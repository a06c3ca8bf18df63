package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeRouter() *gin.Engine {
	h := NewResumeHandler(resume.NewResumeUseCase())
	r := gin.New()
	r.POST("/api/upload-resume", h.UploadResume)
	return r
}

func TestUploadResumeNoFile(t *testing.T) {
	router := resumeRouter()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	w := performUpload(router, "/api/upload-resume", writer.FormDataContentType(), &body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp FailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No file uploaded", resp.Error)
}

func TestUploadResumeEmptyBody(t *testing.T) {
	router := resumeRouter()

	w := performUpload(router, "/api/upload-resume", "multipart/form-data", bytes.NewReader(nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResumeInvalidPDF(t *testing.T) {
	router := resumeRouter()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("definitely not a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := performUpload(router, "/api/upload-resume", writer.FormDataContentType(), &body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp FailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
