package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are carried by the session token stored in the auth cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FamilyID string `json:"familyId"`
}

// InviteClaims are carried by the token mailed to an invited member.
// RegisteredClaims.ID is the Invitation row id.
type InviteClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	FamilyID string `json:"familyId"`
}

// Actor is the authenticated caller of a request as resolved from its session claims.
type Actor struct {
	UserID   uuid.UUID
	FamilyID uuid.UUID
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor created a resource owned by userID.
func (a Actor) Owns(userID uuid.UUID) bool {
	return a.UserID == userID
}

// Actor resolves the identifiers carried by the claims.
func (c *SessionClaims) Actor() (Actor, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Actor{}, fmt.Errorf("invalid user id in claims: %w", err)
	}
	familyID, err := uuid.Parse(c.FamilyID)
	if err != nil {
		return Actor{}, fmt.Errorf("invalid family id in claims: %w", err)
	}
	return Actor{UserID: userID, FamilyID: familyID, Role: c.Role}, nil
}

// ActorFor builds the actor of an already loaded user.
func ActorFor(user *User) Actor {
	return Actor{UserID: user.ID, FamilyID: user.FamilyID, Role: user.Role}
}
