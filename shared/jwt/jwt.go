package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	internal_errors "github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
)

type JwtService interface {
	NewToken(userId domain.UserId) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
	UserId(jwtStr string) (domain.UserId, error)
}

// Jwt signs HS256 tokens. The same type backs access and refresh tokens,
// they differ only in key and ttl.
type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(userId domain.UserId) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid": userId,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, internal_errors.Unauthorized("invalid token signature")
	}

	if !token.Valid {
		return nil, internal_errors.Unauthorized("invalid token")
	}

	return token, nil
}

// UserId decodes jwtStr and returns its uid claim.
func (j *Jwt) UserId(jwtStr string) (domain.UserId, error) {
	token, err := j.DecodeToken(jwtStr)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", internal_errors.Unauthorized("invalid claims")
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", internal_errors.Unauthorized("invalid claims")
	}
	return uid, nil
}
