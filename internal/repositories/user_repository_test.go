package repositories

import (
	"testing"
	"time"

	"walletlink/internal/database"
	"walletlink/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   UserRepositoryInterface
	family *models.Family
	admin  *models.User
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
	s.family, s.admin = database.CreateTestFamily(s.T(), s.db, "admin@example.com")
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	user := &models.User{
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Dup",
		LastName:     "User",
		Role:         models.RoleMember,
		FamilyID:     s.family.ID,
	}

	s.Equal(ErrUserAlreadyExists, s.repo.Create(user))
}

func (s *UserRepositorySuite) TestGetByEmail_Normalizes() {
	found, err := s.repo.GetByEmail("  ADMIN@example.com ")
	s.NoError(err)
	s.Equal(s.admin.ID, found.ID)

	_, err = s.repo.GetByEmail("nobody@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestGetByEmailExcluding() {
	member := database.CreateTestUser(s.T(), s.db, s.family.ID, "member@example.com")

	_, err := s.repo.GetByEmailExcluding("member@example.com", member.ID)
	s.Equal(ErrUserNotFound, err)

	found, err := s.repo.GetByEmailExcluding("member@example.com", s.admin.ID)
	s.NoError(err)
	s.Equal(member.ID, found.ID)
}

func (s *UserRepositorySuite) TestListByFamily_AdminsFirst() {
	database.CreateTestUser(s.T(), s.db, s.family.ID, "aaron@example.com")
	other, _ := database.CreateTestFamily(s.T(), s.db, "other@example.com")
	database.CreateTestUser(s.T(), s.db, other.ID, "stranger@example.com")

	users, err := s.repo.ListByFamily(s.family.ID)
	s.NoError(err)
	s.Len(users, 2)
	s.Equal(models.RoleAdmin, users[0].Role)
	s.Equal("aaron@example.com", users[1].Email)
}

func (s *UserRepositorySuite) TestUpdatePasswordHash_ClearsResetToken() {
	expires := time.Now().Add(time.Hour)
	s.NoError(s.repo.UpdateFields(s.admin.ID, map[string]interface{}{
		"reset_token_hash":       "abc",
		"reset_token_expires_at": expires,
	}))

	found, err := s.repo.GetByResetTokenHash("abc")
	s.NoError(err)
	s.Equal(s.admin.ID, found.ID)

	s.NoError(s.repo.UpdatePasswordHash(s.admin.ID, "new_hash"))

	_, err = s.repo.GetByResetTokenHash("abc")
	s.Equal(ErrUserNotFound, err)

	updated, err := s.repo.GetByID(s.admin.ID)
	s.NoError(err)
	s.Equal("new_hash", updated.PasswordHash)
	s.Nil(updated.ResetTokenExpiresAt)

	s.Equal(ErrUserNotFound, s.repo.UpdatePasswordHash(uuid.New(), "x"))
}

func (s *UserRepositorySuite) TestUpdateFields_DuplicateEmail() {
	member := database.CreateTestUser(s.T(), s.db, s.family.ID, "member@example.com")

	err := s.repo.UpdateFields(member.ID, map[string]interface{}{"email": "admin@example.com"})
	s.Equal(ErrEmailAlreadyExists, err)
}

func (s *UserRepositorySuite) TestDeleteWithData() {
	member := database.CreateTestUser(s.T(), s.db, s.family.ID, "member@example.com")
	account := database.CreateTestAccount(s.T(), s.db, member, "Wallet", "10")
	shared := database.CreateTestCategory(s.T(), s.db, member, "Groceries", true)
	database.CreateTestTransaction(s.T(), s.db, account, shared, models.TransactionTypeExpense, "5", time.Now().UTC())

	adminAccount := database.CreateTestAccount(s.T(), s.db, s.admin, "Bank", "100")
	adminTx := database.CreateTestTransaction(s.T(), s.db, adminAccount, shared, models.TransactionTypeExpense, "7", time.Now().UTC())

	s.NoError(s.repo.DeleteWithData(member.ID))

	_, err := s.repo.GetByID(member.ID)
	s.Equal(ErrUserNotFound, err)

	var accounts, categories, transactions int64
	s.db.Model(&models.Account{}).Where("user_id = ?", member.ID).Count(&accounts)
	s.db.Model(&models.Category{}).Where("user_id = ?", member.ID).Count(&categories)
	s.db.Model(&models.Transaction{}).Count(&transactions)
	s.Zero(accounts)
	s.Zero(categories)
	s.Equal(int64(1), transactions)

	var kept models.Transaction
	s.NoError(s.db.Where("id = ?", adminTx.ID).First(&kept).Error)
	s.Nil(kept.CategoryID)

	s.Equal(ErrUserNotFound, s.repo.DeleteWithData(member.ID))
}

func (s *UserRepositorySuite) TestFamilyRepository_CreateWithAdmin() {
	families := NewFamilyRepository(s.db.DB)

	family := &models.Family{Name: models.DefaultFamilyName("Doe")}
	admin := &models.User{
		Email:        "jane@example.com",
		PasswordHash: "hash",
		FirstName:    "Jane",
		LastName:     "Doe",
	}

	s.NoError(families.CreateWithAdmin(family, admin))
	s.Equal(admin.ID, family.AdminID)
	s.Equal(family.ID, admin.FamilyID)
	s.Equal(models.RoleAdmin, admin.Role)

	found, err := families.GetByID(family.ID)
	s.NoError(err)
	s.Equal("Doe's family", found.Name)

	dup := &models.User{Email: "jane@example.com", PasswordHash: "h", FirstName: "J", LastName: "D"}
	s.Equal(ErrUserAlreadyExists, families.CreateWithAdmin(&models.Family{Name: "Other"}, dup))

	var count int64
	s.db.Model(&models.Family{}).Where("name = ?", "Other").Count(&count)
	s.Zero(count, "family insert must roll back with the admin")

	_, err = families.GetByID(uuid.New())
	s.Equal(ErrFamilyNotFound, err)
}
