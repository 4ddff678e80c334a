package api

import "github.com/FerdyAtmaja/forum-api-V2/shared/domain"

// Request DTOs

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Response DTOs

type AddedUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type LoginResponse = domain.AuthTokens

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
