package setup

import (
	"context"
	"fmt"

	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/handler"
	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/render"
	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/service"
	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/storage/memory"
	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/storage/pg"
	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/utils"
	"github.com/FerdyAtmaja/forum-api-V2/shared/config"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
	"github.com/FerdyAtmaja/forum-api-V2/shared/jwt"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
)

// Storage is everything the services need from a backing store, plus lifecycle.
type Storage interface {
	service.UserStorage
	service.TokenStorage
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	service.LikeStorage
	Ping(ctx context.Context) error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	accessJwt := jwt.New(cfg.AccessTokenKey(), cfg.AccessTokenTTL())
	refreshJwt := jwt.New(cfg.RefreshTokenKey(), cfg.RefreshTokenTTL())
	validator := utils.NewContentValidator(&cfg.Public)

	services := handler.Services{
		Auth:    service.NewAuth(storage, storage, accessJwt, refreshJwt),
		Thread:  service.NewThread(storage, storage, storage, validator),
		Comment: service.NewComment(storage, storage, validator),
		Reply:   service.NewReply(storage, storage, storage, validator),
		Like:    service.NewLike(storage, storage, storage),
	}

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(services, render.New(), storage, cfg),
		AuthMiddleware: mw.NewAuth(accessJwt),
	}, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Public.Storage {
	case config.StorageMemory:
		logger.Log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(idgen.UUID), nil
	case config.StoragePostgres:
		storage, err := pg.New(ctx, cfg.Private.Pg, idgen.UUID)
		if err != nil {
			return nil, fmt.Errorf("init postgres storage: %w", err)
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Public.Storage)
	}
}
