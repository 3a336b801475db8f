package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MemberSummary struct {
	ID        uuid.UUID       `gorm:"column:id" json:"id"`
	FirstName string          `gorm:"column:first_name" json:"firstname"`
	LastName  string          `gorm:"column:last_name" json:"lastname"`
	Email     string          `gorm:"column:email" json:"email"`
	Avatar    string          `gorm:"column:avatar" json:"avatar"`
	Role      string          `gorm:"column:role" json:"role"`
	Income    decimal.Decimal `gorm:"column:income" json:"income"`
	Expense   decimal.Decimal `gorm:"column:expense" json:"expense"`
}

// MonthlyTotal is one (year, month, type) bucket as returned by the database.
type MonthlyTotal struct {
	Year  int             `gorm:"column:year"`
	Month int             `gorm:"column:month"`
	Type  string          `gorm:"column:type"`
	Total decimal.Decimal `gorm:"column:total"`
}

// MonthlyIncomeExpense is a chart point labelled like "Jan 2025".
type MonthlyIncomeExpense struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type CategoryBreakdown struct {
	CategoryID   uuid.UUID       `gorm:"column:category_id" json:"categoryId"`
	CategoryName string          `gorm:"column:category_name" json:"categoryName"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount" json:"totalAmount"`
}

// DashboardSummary bundles every dashboard aggregate for one family.
type DashboardSummary struct {
	TotalBalance       decimal.Decimal        `json:"totalBalance"`
	TotalIncome        decimal.Decimal        `json:"totalIncome"`
	TotalExpense       decimal.Decimal        `json:"totalExpense"`
	Accounts           []AccountBalance       `json:"accounts"`
	Members            []MemberSummary        `json:"members"`
	MonthlyIncome      []MonthlyIncomeExpense `json:"monthlyIncomeExpense"`
	RecentTransactions []Transaction          `json:"recentTransactions"`
	CategoryBreakdown  []CategoryBreakdown    `json:"categoryBreakdown"`
}
