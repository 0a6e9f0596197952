package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dabeli/internal/domain/entity"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	Subject uuid.UUID
	Role    entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
type TokenService interface {
	// GenerateToken signs a session token for subject with the given identity claim.
	GenerateToken(subject uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
