package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	MaxDescriptionLength = 500
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrDescriptionTooLong     = errors.New("description must be at most 500 characters")
)

// Transaction is a single income or expense against an account.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(10);not null;index" json:"type"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"accountId"`
	FamilyID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"familyId"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"categoryId"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	Datetime    time.Time       `gorm:"not null;index" json:"datetime"`
	Attachments StringList      `gorm:"type:text" json:"attachments"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Account  *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.Datetime.IsZero() {
		t.Datetime = now
	}

	return t.Validate()
}

func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if len([]rune(t.Description)) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// SignedAmount is the effect of the transaction on its account balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t *Transaction) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

func (t *Transaction) TableName() string {
	return "transactions"
}

func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
