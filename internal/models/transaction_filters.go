package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters narrows a family's transactions for listing.
type TransactionFilters struct {
	FamilyID  uuid.UUID
	UserID    *uuid.UUID
	AccountID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Type      string
}
