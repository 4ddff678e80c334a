package handler

import (
	"context"

	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/service"
	"github.com/FerdyAtmaja/forum-api-V2/shared/config"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
)

// HealthChecker reports whether the storage can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Renderer interface {
	ThreadDetail(detail domain.ThreadDetail) domain.ThreadDetail
}

type Handler struct {
	auth     service.AuthService
	thread   service.ThreadService
	comment  service.CommentService
	reply    service.ReplyService
	like     service.LikeService
	renderer Renderer
	health   HealthChecker
	cfg      *config.Config
}

type Services struct {
	Auth    service.AuthService
	Thread  service.ThreadService
	Comment service.CommentService
	Reply   service.ReplyService
	Like    service.LikeService
}

func New(services Services, renderer Renderer, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:     services.Auth,
		thread:   services.Thread,
		comment:  services.Comment,
		reply:    services.Reply,
		like:     services.Like,
		renderer: renderer,
		health:   health,
		cfg:      cfg,
	}
}
