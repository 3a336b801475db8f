package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceTotals are the income and expense sums of one account.
type BalanceTotals struct {
	AccountID uuid.UUID       `gorm:"column:account_id"`
	Income    decimal.Decimal `gorm:"column:income"`
	Expense   decimal.Decimal `gorm:"column:expense"`
}

// AccountBalance is an account with its derived figures:
// currentBalance = initialBalance + income - expense.
type AccountBalance struct {
	Account
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

func NewAccountBalance(account Account, totals BalanceTotals) AccountBalance {
	return AccountBalance{
		Account:        account,
		Income:         totals.Income,
		Expense:        totals.Expense,
		CurrentBalance: account.InitialBalance.Add(totals.Income).Sub(totals.Expense),
	}
}
