package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/service"
	"github.com/FerdyAtmaja/forum-api-V2/shared/api"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
)

const testUserId domain.UserId = "user-123"

// --- Mocks ---

type MockAuthService struct {
	RegisterFunc func(ctx context.Context, newUser domain.NewUser) (domain.RegisteredUser, error)
	LoginFunc    func(ctx context.Context, creds domain.Credentials) (domain.AuthTokens, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (string, error)
	LogoutFunc   func(ctx context.Context, refreshToken string) error
}

func (m *MockAuthService) Register(ctx context.Context, newUser domain.NewUser) (domain.RegisteredUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, newUser)
	}
	return domain.RegisteredUser{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (domain.AuthTokens, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return domain.AuthTokens{}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return "", nil
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

type MockThreadService struct {
	CreateFunc func(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error)
	DetailFunc func(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(ctx context.Context, newThread domain.NewThread, owner domain.UserId) (domain.AddedThread, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, newThread, owner)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Detail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.DetailFunc != nil {
		return m.DetailFunc(ctx, id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	CreateFunc func(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	DeleteFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) Create(ctx context.Context, newComment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, newComment, threadId, owner)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	CreateFunc func(ctx context.Context, newReply domain.NewReply, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	DeleteFunc func(ctx context.Context, target service.ReplyTarget, owner domain.UserId) error
}

func (m *MockReplyService) Create(ctx context.Context, newReply domain.NewReply, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, newReply, threadId, commentId, owner)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, target service.ReplyTarget, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, target, owner)
	}
	return nil
}

type MockLikeService struct {
	ToggleFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockLikeService) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, threadId, commentId, owner)
	}
	return nil
}

type MockRenderer struct {
	ThreadDetailFunc func(detail domain.ThreadDetail) domain.ThreadDetail
}

func (m *MockRenderer) ThreadDetail(detail domain.ThreadDetail) domain.ThreadDetail {
	if m.ThreadDetailFunc != nil {
		return m.ThreadDetailFunc(detail)
	}
	return detail
}

// --- Helpers ---

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

// newTestRouter mounts the handler the way the server does, with the auth
// middleware replaced by one that injects testUserId.
func newTestRouter(h *Handler) http.Handler {
	router := chi.NewRouter()
	router.Post("/users", h.RegisterUser)
	router.Post("/authentications", h.Login)
	router.Put("/authentications", h.RefreshToken)
	router.Delete("/authentications", h.Logout)
	router.Get("/threads/{threadId}", h.GetThread)

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), mw.UserIdKey, testUserId)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
		r.Post("/threads", h.CreateThread)
		r.Post("/threads/{threadId}/comments", h.CreateComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	})
	return router
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(rr, req)
	return rr
}

// decodeResponse unmarshals the envelope, data is decoded into the given value when non-nil.
func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) api.Response {
	t.Helper()
	var raw struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw), rr.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return api.Response{Status: raw.Status, Message: raw.Message}
}
