package services

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"walletlink/internal/config"
	"walletlink/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    *TokenService
	now        time.Time
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:      s.privateKey,
		PublicKey:       s.publicKey,
		Issuer:          "walletlink-test",
		SessionDuration: 24 * time.Hour,
		InviteDuration:  72 * time.Hour,
	}).(*TokenService)
	s.service.now = func() time.Time { return s.now }
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) newUser() *models.User {
	return &models.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      models.RoleAdmin,
		FamilyID:  uuid.New(),
	}
}

func (s *TokenServiceTestSuite) newInvitation() *models.Invitation {
	return &models.Invitation{
		ID:        uuid.New(),
		Email:     "kid@example.com",
		FamilyID:  uuid.New(),
		InvitedBy: uuid.New(),
		ExpiresAt: s.now.Add(72 * time.Hour),
	}
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken_RoundTrip() {
	user := s.newUser()

	token, expiresAt, err := s.service.GenerateSessionToken(user)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(s.now.Add(24*time.Hour), expiresAt)

	claims, err := s.service.ValidateSessionToken(token)
	s.Require().NoError(err)
	s.Equal(user.ID.String(), claims.UserID)
	s.Equal(user.FamilyID.String(), claims.FamilyID)
	s.Equal(user.Email, claims.Email)
	s.Equal(models.RoleAdmin, claims.Role)
	s.NotEmpty(claims.ID)

	actor, err := claims.Actor()
	s.Require().NoError(err)
	s.Equal(models.ActorFor(user), actor)
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken_UniqueJTI() {
	user := s.newUser()

	first, _, err := s.service.GenerateSessionToken(user)
	s.Require().NoError(err)
	second, _, err := s.service.GenerateSessionToken(user)
	s.Require().NoError(err)

	firstClaims, err := s.service.ValidateSessionToken(first)
	s.Require().NoError(err)
	secondClaims, err := s.service.ValidateSessionToken(second)
	s.Require().NoError(err)
	s.NotEqual(firstClaims.ID, secondClaims.ID)
}

func (s *TokenServiceTestSuite) TestGenerateSessionToken_NilUser() {
	_, _, err := s.service.GenerateSessionToken(nil)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Expired() {
	token, _, err := s.service.GenerateSessionToken(s.newUser())
	s.Require().NoError(err)

	s.now = s.now.Add(25 * time.Hour)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Empty() {
	_, err := s.service.ValidateSessionToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_Garbage() {
	_, err := s.service.ValidateSessionToken("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_WrongKey() {
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:      otherKey,
		PublicKey:       &otherKey.PublicKey,
		Issuer:          "walletlink-test",
		SessionDuration: time.Hour,
	}).(*TokenService)
	other.now = s.service.now
	token, _, err := other.GenerateSessionToken(s.newUser())
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:      s.privateKey,
		PublicKey:       s.publicKey,
		Issuer:          "someone-else",
		SessionDuration: time.Hour,
	}).(*TokenService)
	other.now = s.service.now
	token, _, err := other.GenerateSessionToken(s.newUser())
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_RejectsHMAC() {
	claims := models.SessionClaims{
		RegisteredClaims: s.service.registeredClaims("x", uuid.NewString(), audienceSession, s.now, s.now.Add(time.Hour)),
		UserID:           uuid.NewString(),
		FamilyID:         uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_RejectsOtherRSAAlgorithm() {
	claims := models.SessionClaims{
		RegisteredClaims: s.service.registeredClaims("x", uuid.NewString(), audienceSession, s.now, s.now.Add(time.Hour)),
		UserID:           uuid.NewString(),
		FamilyID:         uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS512, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateSessionToken_MissingExpiry() {
	claims := models.SessionClaims{
		RegisteredClaims: s.service.registeredClaims("x", uuid.NewString(), audienceSession, s.now, s.now.Add(time.Hour)),
		UserID:           uuid.NewString(),
		FamilyID:         uuid.NewString(),
	}
	claims.ExpiresAt = nil
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateSessionToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestInviteToken_RoundTrip() {
	invitation := s.newInvitation()

	token, err := s.service.GenerateInviteToken(invitation)
	s.Require().NoError(err)

	claims, err := s.service.ValidateInviteToken(token)
	s.Require().NoError(err)
	s.Equal(invitation.ID.String(), claims.ID)
	s.Equal(invitation.Email, claims.Email)
	s.Equal(invitation.FamilyID.String(), claims.FamilyID)
	s.Equal(invitation.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func (s *TokenServiceTestSuite) TestInviteToken_RequiresPersistedInvitation() {
	_, err := s.service.GenerateInviteToken(&models.Invitation{Email: "kid@example.com"})
	s.Error(err)

	_, err = s.service.GenerateInviteToken(nil)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestInviteToken_Expired() {
	invitation := s.newInvitation()
	token, err := s.service.GenerateInviteToken(invitation)
	s.Require().NoError(err)

	s.now = invitation.ExpiresAt.Add(time.Minute)

	_, err = s.service.ValidateInviteToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestTokenTypesAreNotInterchangeable() {
	sessionToken, _, err := s.service.GenerateSessionToken(s.newUser())
	s.Require().NoError(err)
	inviteToken, err := s.service.GenerateInviteToken(s.newInvitation())
	s.Require().NoError(err)

	_, err = s.service.ValidateInviteToken(sessionToken)
	s.ErrorIs(err, ErrInvalidTokenType)

	_, err = s.service.ValidateSessionToken(inviteToken)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name     string
		header   string
		expected string
		err      error
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", nil},
		{"empty", "", "", ErrInvalidAuthHeader},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", ErrInvalidAuthHeader},
		{"missing token", "Bearer   ", "", ErrInvalidAuthHeader},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.err != nil {
				s.ErrorIs(err, tc.err)
				return
			}
			s.NoError(err)
			s.Equal(tc.expected, token)
		})
	}
}
