package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,positive_decimal"`
	Type        string           `json:"type" validate:"required,tx_type"`
	AccountID   uuid.UUID        `json:"accountId" validate:"required"`
	CategoryID  uuid.UUID        `json:"categoryId" validate:"required"`
	Description string           `json:"description" validate:"max=500"`
	Datetime    time.Time        `json:"datetime" validate:"required"`
	Attachments []string         `json:"attachments" validate:"omitempty,max=10,dive,url"`
}

// UpdateTransactionRequest edits a transaction; omitted fields stay unchanged
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,positive_decimal"`
	Type        *string          `json:"type" validate:"omitempty,tx_type"`
	AccountID   *uuid.UUID       `json:"accountId"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Datetime    *time.Time       `json:"datetime"`
	Attachments []string         `json:"attachments" validate:"omitempty,max=10,dive,url"`
}

// ListTransactionsQuery is bound from the query string of GET /transactions
type ListTransactionsQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	AccountID string `query:"accountId"`
	MemberID  string `query:"memberId"`
}
