package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Name           string           `json:"name" validate:"required,notblank,max=100"`
	InitialBalance *decimal.Decimal `json:"initialBalance" validate:"required"`
	IconID         uuid.UUID        `json:"iconId" validate:"required"`
	ColorID        uuid.UUID        `json:"colorId" validate:"required"`
}

// UpdateAccountRequest edits an account; omitted fields stay unchanged
type UpdateAccountRequest struct {
	Name           *string          `json:"name" validate:"omitempty,notblank,max=100"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
	IconID         *uuid.UUID       `json:"iconId"`
	ColorID        *uuid.UUID       `json:"colorId"`
}
