package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

// SetupTest runs before each test
func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(bcrypt.MinCost, 0)
}

// TestPasswordServiceSuite runs the test suite
func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_Defaults() {
	service := NewPasswordService(0, 0).(*PasswordService)
	s.Equal(DefaultBCryptCost, service.cost)
	s.Equal(DefaultMinPasswordLength, service.minLength)
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	testCases := []struct {
		name     string
		password string
		err      error
	}{
		{"valid", "correct horse", nil},
		{"exactly minimum", "12345678", nil},
		{"empty", "", ErrPasswordEmpty},
		{"whitespace only", "          ", ErrPasswordBlank},
		{"too short", "short", ErrPasswordTooShort},
		{"too long", strings.Repeat("a", MaxPasswordLength+1), ErrPasswordTooLong},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.service.ValidatePassword(tc.password)
			if tc.err == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_CustomMinimum() {
	service := NewPasswordService(bcrypt.MinCost, 12)

	err := service.ValidatePassword("elevenchars")
	s.ErrorIs(err, ErrPasswordTooShort)
	s.Contains(err.Error(), "at least 12 characters")

	s.NoError(service.ValidatePassword("twelve chars"))
}

func (s *PasswordServiceTestSuite) TestHashAndCompare() {
	hash, err := s.service.HashPassword("correct horse")
	s.Require().NoError(err)
	s.NotEqual("correct horse", hash)

	s.True(s.service.ComparePassword("correct horse", hash))
	s.False(s.service.ComparePassword("battery staple", hash))
	s.False(s.service.ComparePassword("correct horse", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestHashPassword_Salted() {
	first, err := s.service.HashPassword("correct horse")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("correct horse")
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsInvalid() {
	_, err := s.service.HashPassword("short")
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestGenerateResetToken() {
	token, hash, err := s.service.GenerateResetToken()
	s.Require().NoError(err)

	s.Len(token, 64)
	s.Len(hash, 64)
	s.NotEqual(token, hash)
	s.Equal(hash, s.service.HashResetToken(token))

	other, _, err := s.service.GenerateResetToken()
	s.Require().NoError(err)
	s.NotEqual(token, other)
}
