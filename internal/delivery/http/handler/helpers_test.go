package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProfileRepo struct {
	byEmail    map[string]*domain.StudentProfile
	summaries  []*domain.ProfileSummary
	promoted   []string
	upsertErr  error
	listErr    error
	promoteErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byEmail: map[string]*domain.StudentProfile{}}
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	now := time.Now()
	if existing, ok := f.byEmail[p.Email]; ok {
		p.UserID = existing.UserID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.UserID = "u-" + p.Email
		p.CreatedAt = now
	}
	p.SubscriptionStatus = domain.SubscriptionFree
	p.UpdatedAt = now
	stored := *p
	f.byEmail[p.Email] = &stored
	return nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.StudentProfile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) ListSummaries(ctx context.Context) ([]*domain.ProfileSummary, error) {
	return f.summaries, f.listErr
}

func (f *fakeProfileRepo) Promote(ctx context.Context, email string) error {
	if f.promoteErr != nil {
		return f.promoteErr
	}
	f.promoted = append(f.promoted, email)
	return nil
}

type fakeChatClient struct {
	rawBody json.RawMessage
	reply   string
	err     error
	calls   int
}

func (f *fakeChatClient) ChatRaw(ctx context.Context, system, user string) (json.RawMessage, error) {
	f.calls++
	return f.rawBody, f.err
}

func (f *fakeChatClient) Chat(ctx context.Context, system, user string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func performJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performUpload(router *gin.Engine, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
