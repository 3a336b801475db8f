package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"walletlink/internal/config"
	"walletlink/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	audienceSession = "session"
	audienceInvite  = "invite"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService signs and verifies the RS256 session and invitation tokens
type TokenService struct {
	config.JWTConfig
	now func() time.Time
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		JWTConfig: *jwtConfig,
		now:       time.Now,
	}
}

// GenerateSessionToken issues the token stored in the auth cookie
func (ts *TokenService) GenerateSessionToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}

	now := ts.now()
	expiresAt := now.Add(ts.SessionDuration)

	claims := models.SessionClaims{
		RegisteredClaims: ts.registeredClaims(user.Email, uuid.NewString(), audienceSession, now, expiresAt),
		UserID:           user.ID.String(),
		Email:            user.Email,
		Role:             user.Role,
		FamilyID:         user.FamilyID.String(),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (ts *TokenService) ValidateSessionToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	if err := ts.parse(tokenString, claims, audienceSession); err != nil {
		return nil, err
	}
	if claims.UserID == "" || claims.FamilyID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateInviteToken signs an invitation. The token id is the invitation id, so the
// persisted row decides whether it was already used.
func (ts *TokenService) GenerateInviteToken(invitation *models.Invitation) (string, error) {
	if invitation == nil || invitation.ID == uuid.Nil {
		return "", errors.New("invitation must be persisted before signing")
	}

	claims := models.InviteClaims{
		RegisteredClaims: ts.registeredClaims(invitation.Email, invitation.ID.String(), audienceInvite, ts.now(), invitation.ExpiresAt),
		Email:            invitation.Email,
		FamilyID:         invitation.FamilyID.String(),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign invite token: %w", err)
	}
	return tokenString, nil
}

func (ts *TokenService) ValidateInviteToken(tokenString string) (*models.InviteClaims, error) {
	claims := &models.InviteClaims{}
	if err := ts.parse(tokenString, claims, audienceInvite); err != nil {
		return nil, err
	}
	if claims.Email == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ts *TokenService) registeredClaims(subject, id, audience string, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    ts.Issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{audience},
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
}

func (ts *TokenService) parse(tokenString string, claims jwt.Claims, audience string) error {
	if tokenString == "" {
		return ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, ts.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(ts.Issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil {
		return ts.mapTokenError(err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}

	return nil
}

func (ts *TokenService) keyFunc(*jwt.Token) (interface{}, error) {
	return ts.PublicKey, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrInvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrInvalidTokenType
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
