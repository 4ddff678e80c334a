package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/utils"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
)

type AuthService interface {
	Register(ctx context.Context, newUser domain.NewUser) (domain.RegisteredUser, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type Auth struct {
	users   UserStorage
	tokens  TokenStorage
	access  Jwt
	refresh Jwt
}

type UserStorage interface {
	// VerifyAvailableUsername returns a Conflict error when the username is taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error)
	GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}

// TokenStorage persists refresh tokens, only their hashes are passed in.
type TokenStorage interface {
	AddToken(ctx context.Context, tokenHash string) error
	VerifyTokenExists(ctx context.Context, tokenHash string) error
	DeleteToken(ctx context.Context, tokenHash string) error
}

type Jwt interface {
	NewToken(userId domain.UserId) (string, error)
	UserId(jwtStr string) (domain.UserId, error)
}

func NewAuth(users UserStorage, tokens TokenStorage, access Jwt, refresh Jwt) *Auth {
	return &Auth{
		users:   users,
		tokens:  tokens,
		access:  access,
		refresh: refresh,
	}
}

func (a *Auth) Register(ctx context.Context, newUser domain.NewUser) (domain.RegisteredUser, error) {
	if err := newUser.Validate(); err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := a.users.VerifyAvailableUsername(ctx, newUser.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(newUser.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}

	return a.users.AddUser(ctx, domain.User{
		Username: newUser.Username,
		PassHash: string(passHash),
		Fullname: newUser.Fullname,
	})
}

// Login returns a fresh token pair. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (domain.AuthTokens, error) {
	if err := creds.Validate(); err != nil {
		return domain.AuthTokens{}, err
	}

	user, err := a.users.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.AuthTokens{}, errors.Unauthorized("Invalid credentials")
		}
		return domain.AuthTokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return domain.AuthTokens{}, errors.Unauthorized("Invalid credentials")
	}

	accessToken, err := a.access.NewToken(user.Id)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	refreshToken, err := a.refresh.NewToken(user.Id)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	if err := a.tokens.AddToken(ctx, utils.HashToken(refreshToken)); err != nil {
		return domain.AuthTokens{}, err
	}

	return domain.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh issues a new access token for a refresh token that is both validly
// signed and still stored.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userId, err := a.refresh.UserId(refreshToken)
	if err != nil {
		return "", errors.Validation("refresh token is invalid")
	}
	if err := a.verifyStoredToken(ctx, refreshToken); err != nil {
		return "", err
	}

	return a.access.NewToken(userId)
}

func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.verifyStoredToken(ctx, refreshToken); err != nil {
		return err
	}
	return a.tokens.DeleteToken(ctx, utils.HashToken(refreshToken))
}

func (a *Auth) verifyStoredToken(ctx context.Context, refreshToken string) error {
	err := a.tokens.VerifyTokenExists(ctx, utils.HashToken(refreshToken))
	if errors.IsNotFound(err) {
		return errors.Validation("refresh token not found")
	}
	return err
}
