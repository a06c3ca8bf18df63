package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter(repo *fakeProfileRepo, pin string) *gin.Engine {
	h := NewAdminHandler(admin.NewAdminUseCase(repo, pin))
	r := gin.New()
	r.GET("/api/admin/users", h.ListUsers)
	r.POST("/api/admin/promote", h.PromoteUser)
	return r
}

func TestListUsersNewestFirst(t *testing.T) {
	now := time.Now()
	repo := newFakeProfileRepo()
	repo.summaries = []*domain.ProfileSummary{
		{UserID: "u-2", Email: "new@example.com", CreatedAt: now},
		{UserID: "u-1", Email: "old@example.com", CreatedAt: now.Add(-time.Hour)},
	}
	router := adminRouter(repo, "ALOHA")

	w := performJSON(router, "GET", "/api/admin/users", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got []*domain.ProfileSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "new@example.com", got[0].Email)
}

func TestListUsersEmptyIsArray(t *testing.T) {
	router := adminRouter(newFakeProfileRepo(), "ALOHA")

	w := performJSON(router, "GET", "/api/admin/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListUsersStorageFailure(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.listErr = assert.AnError
	router := adminRouter(repo, "ALOHA")

	w := performJSON(router, "GET", "/api/admin/users", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Database error", resp.Error)
}

func TestPromoteWrongPIN(t *testing.T) {
	repo := newFakeProfileRepo()
	router := adminRouter(repo, "ALOHA")

	w := performJSON(router, "POST", "/api/admin/promote",
		`{"email":"jane@example.com","pin":"WRONG"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp FailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Wrong PIN!", resp.Error)
	assert.Empty(t, repo.promoted)
}

func TestPromoteCorrectPIN(t *testing.T) {
	repo := newFakeProfileRepo()
	router := adminRouter(repo, "ALOHA")

	w := performJSON(router, "POST", "/api/admin/promote",
		`{"email":"jane@example.com","pin":"ALOHA"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []string{"jane@example.com"}, repo.promoted)
}

func TestPromoteUpdateFailure(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.promoteErr = assert.AnError
	router := adminRouter(repo, "ALOHA")

	w := performJSON(router, "POST", "/api/admin/promote",
		`{"email":"jane@example.com","pin":"ALOHA"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp FailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Update failed", resp.Error)
}

func TestPromoteMissingPIN(t *testing.T) {
	router := adminRouter(newFakeProfileRepo(), "ALOHA")

	w := performJSON(router, "POST", "/api/admin/promote", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
