package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	jwt_internal "github.com/FerdyAtmaja/forum-api-V2/shared/jwt"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
	"github.com/FerdyAtmaja/forum-api-V2/shared/utils"
)

// Key to store the authenticated user id in the request context
type key int

const UserIdKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid "Authorization: Bearer <access token>" header.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.extractUserId(r)
			if err != nil {
				if errors.StatusCode(err) == 0 {
					logger.Log.Error("failed to authenticate request", "path", r.URL.Path, "error", err)
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractUserId(r *http.Request) (domain.UserId, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", errors.Unauthorized("Missing authentication")
	}
	return a.jwtService.UserId(token)
}

// GetUserIdFromContext returns the id NeedAuth stored, or "" outside an authenticated route.
func GetUserIdFromContext(r *http.Request) domain.UserId {
	userId, ok := r.Context().Value(UserIdKey).(domain.UserId)
	if !ok {
		return ""
	}
	return userId
}
