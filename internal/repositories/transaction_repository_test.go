package repositories

import (
	"testing"
	"time"

	"walletlink/internal/database"
	"walletlink/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	family   *models.Family
	admin    *models.User
	member   *models.User
	bank     *models.Account
	wallet   *models.Account
	food     *models.Category
	salary   *models.Category
	baseTime time.Time
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	s.family, s.admin = database.CreateTestFamily(s.T(), s.db, "admin@example.com")
	s.member = database.CreateTestUser(s.T(), s.db, s.family.ID, "member@example.com")
	s.bank = database.CreateTestAccount(s.T(), s.db, s.admin, "Bank", "500")
	s.wallet = database.CreateTestAccount(s.T(), s.db, s.member, "Wallet", "50")
	s.food = database.CreateTestCategory(s.T(), s.db, s.admin, "Food", true)
	s.salary = database.CreateTestCategory(s.T(), s.db, s.admin, "Salary", true)
	s.baseTime = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) create(account *models.Account, category *models.Category, txType, amount string, at time.Time) *models.Transaction {
	return database.CreateTestTransaction(s.T(), s.db, account, category, txType, amount, at)
}

func (s *TransactionRepositorySuite) TestCreate_RejectsInvalid() {
	tx := &models.Transaction{
		Amount:    decimal.Zero,
		Type:      models.TransactionTypeIncome,
		UserID:    s.admin.ID,
		AccountID: s.bank.ID,
		FamilyID:  s.family.ID,
	}
	s.Error(s.repo.Create(tx))
}

func (s *TransactionRepositorySuite) TestGetByID_LoadsDetails() {
	tx := s.create(s.bank, s.food, models.TransactionTypeExpense, "12.50", s.baseTime)

	found, err := s.repo.GetByID(tx.ID)
	s.NoError(err)
	s.Require().NotNil(found.User)
	s.Equal(s.admin.Email, found.User.Email)
	s.Require().NotNil(found.Account)
	s.NotNil(found.Account.Icon)
	s.Require().NotNil(found.Category)
	s.NotNil(found.Category.Color)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestList_FiltersAndOrder() {
	s.create(s.bank, s.food, models.TransactionTypeExpense, "10", s.baseTime)
	newest := s.create(s.bank, s.salary, models.TransactionTypeIncome, "1000", s.baseTime.Add(48*time.Hour))
	s.create(s.bank, nil, models.TransactionTypeExpense, "3", s.baseTime.Add(24*time.Hour))
	s.create(s.wallet, s.food, models.TransactionTypeExpense, "5", s.baseTime)

	adminID := s.admin.ID
	page, total, err := s.repo.List(models.TransactionFilters{FamilyID: s.family.ID, UserID: &adminID}, 0, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(page, 2)
	s.Equal(newest.ID, page[0].ID)
	s.True(page[0].Datetime.After(page[1].Datetime))

	walletID := s.wallet.ID
	page, total, err = s.repo.List(models.TransactionFilters{FamilyID: s.family.ID, AccountID: &walletID}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(s.member.ID, page[0].UserID)

	page, total, err = s.repo.List(models.TransactionFilters{FamilyID: uuid.New()}, 0, 10)
	s.NoError(err)
	s.Zero(total)
	s.Empty(page)
}

func (s *TransactionRepositorySuite) TestUpdateAndDelete() {
	tx := s.create(s.bank, s.food, models.TransactionTypeExpense, "10", s.baseTime)

	tx.Amount = decimal.NewFromInt(25)
	tx.Type = models.TransactionTypeIncome
	tx.CategoryID = nil
	tx.Description = "refund"
	s.NoError(s.repo.Update(tx))

	found, err := s.repo.GetByID(tx.ID)
	s.NoError(err)
	s.True(decimal.NewFromInt(25).Equal(found.Amount))
	s.Equal(models.TransactionTypeIncome, found.Type)
	s.Nil(found.CategoryID)
	s.Equal("refund", found.Description)

	tx.Amount = decimal.NewFromInt(-1)
	s.Equal(models.ErrInvalidAmount, s.repo.Update(tx))

	s.NoError(s.repo.Delete(tx.ID))
	s.Equal(ErrTransactionNotFound, s.repo.Delete(tx.ID))
}

func (s *TransactionRepositorySuite) TestCounts() {
	s.create(s.bank, s.food, models.TransactionTypeExpense, "10", s.baseTime)
	s.create(s.wallet, s.food, models.TransactionTypeExpense, "10", s.baseTime)

	count, err := s.repo.CountByAccount(s.bank.ID)
	s.NoError(err)
	s.Equal(int64(1), count)

	count, err = s.repo.CountByCategory(s.food.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountByCategory(s.salary.ID)
	s.NoError(err)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestSumByAccount() {
	s.create(s.bank, s.salary, models.TransactionTypeIncome, "200", s.baseTime)
	s.create(s.bank, s.food, models.TransactionTypeExpense, "100", s.baseTime)
	s.create(s.bank, s.food, models.TransactionTypeExpense, "50.25", s.baseTime)

	totals, err := s.repo.SumByAccount([]uuid.UUID{s.bank.ID, s.wallet.ID})
	s.NoError(err)
	s.Len(totals, 1)

	bank := totals[s.bank.ID]
	s.True(decimal.NewFromInt(200).Equal(bank.Income), bank.Income.String())
	s.True(decimal.RequireFromString("150.25").Equal(bank.Expense), bank.Expense.String())

	balance := models.NewAccountBalance(*s.bank, bank)
	s.True(decimal.RequireFromString("549.75").Equal(balance.CurrentBalance), balance.CurrentBalance.String())

	empty, err := s.repo.SumByAccount(nil)
	s.NoError(err)
	s.Empty(empty)
}

func (s *TransactionRepositorySuite) TestMemberTotals() {
	s.create(s.bank, s.salary, models.TransactionTypeIncome, "300", s.baseTime)
	s.create(s.wallet, s.food, models.TransactionTypeExpense, "40", s.baseTime)
	s.create(s.wallet, s.food, models.TransactionTypeExpense, "99", s.baseTime.AddDate(0, -2, 0))

	from := s.baseTime.AddDate(0, 0, -7)
	to := s.baseTime.AddDate(0, 0, 7)
	rows, err := s.repo.MemberTotals(models.TransactionFilters{FamilyID: s.family.ID, From: &from, To: &to})
	s.NoError(err)
	s.Len(rows, 2)

	byID := map[uuid.UUID]models.MemberSummary{}
	for _, r := range rows {
		byID[r.ID] = r
	}
	s.True(decimal.NewFromInt(300).Equal(byID[s.admin.ID].Income))
	s.True(decimal.Zero.Equal(byID[s.admin.ID].Expense))
	s.True(decimal.NewFromInt(40).Equal(byID[s.member.ID].Expense))

	memberID := s.member.ID
	rows, err = s.repo.MemberTotals(models.TransactionFilters{FamilyID: s.family.ID, UserID: &memberID})
	s.NoError(err)
	s.Len(rows, 1)
	s.True(decimal.NewFromInt(139).Equal(rows[0].Expense))
}

func (s *TransactionRepositorySuite) TestMonthlyTotals() {
	s.create(s.bank, s.salary, models.TransactionTypeIncome, "100", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	s.create(s.bank, s.salary, models.TransactionTypeIncome, "50", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	s.create(s.bank, s.food, models.TransactionTypeExpense, "30", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	s.create(s.bank, s.food, models.TransactionTypeExpense, "999", time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.repo.MonthlyTotals(models.TransactionFilters{FamilyID: s.family.ID, From: &from})
	s.NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(2025, rows[0].Year)
	s.Equal(1, rows[0].Month)
	s.Equal(models.TransactionTypeIncome, rows[0].Type)
	s.True(decimal.NewFromInt(150).Equal(rows[0].Total))

	s.Equal(3, rows[1].Month)
	s.Equal(models.TransactionTypeExpense, rows[1].Type)
}

func (s *TransactionRepositorySuite) TestCategoryBreakdown() {
	rent := database.CreateTestCategory(s.T(), s.db, s.admin, "Rent", true)
	s.create(s.bank, s.food, models.TransactionTypeExpense, "20", s.baseTime)
	s.create(s.wallet, s.food, models.TransactionTypeExpense, "15", s.baseTime)
	s.create(s.bank, rent, models.TransactionTypeExpense, "800", s.baseTime)
	s.create(s.bank, s.salary, models.TransactionTypeIncome, "2000", s.baseTime)

	rows, err := s.repo.CategoryBreakdown(models.TransactionFilters{FamilyID: s.family.ID})
	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Rent", rows[0].CategoryName)
	s.Equal(rent.ID, rows[0].CategoryID)
	s.Equal("Food", rows[1].CategoryName)
	s.True(decimal.NewFromInt(35).Equal(rows[1].TotalAmount))

	memberID := s.member.ID
	rows, err = s.repo.CategoryBreakdown(models.TransactionFilters{FamilyID: s.family.ID, UserID: &memberID})
	s.NoError(err)
	s.Require().Len(rows, 1)
	s.True(decimal.NewFromInt(15).Equal(rows[0].TotalAmount))
}
