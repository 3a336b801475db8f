package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"walletlink/internal/config"
	"walletlink/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory sqlite database with the schema and catalog in place.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := SeedCatalog(db); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

// CreateTestFamily creates a family together with its admin.
func CreateTestFamily(t *testing.T, db *DB, email string) (*models.Family, *models.User) {
	t.Helper()

	adminID := uuid.New()
	family := &models.Family{
		Name:    models.DefaultFamilyName("Test"),
		AdminID: adminID,
	}
	if err := db.Create(family).Error; err != nil {
		t.Fatalf("failed to create test family: %v", err)
	}

	admin := &models.User{
		ID:           adminID,
		Email:        email,
		PasswordHash: "hashed_password",
		FirstName:    "Admin",
		LastName:     "Test",
		Role:         models.RoleAdmin,
		FamilyID:     family.ID,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}

	return family, admin
}

// CreateTestUser creates a member of the given family.
func CreateTestUser(t *testing.T, db *DB, familyID uuid.UUID, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleMember,
		FamilyID:     familyID,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// TestIcon returns any seeded icon of the given type.
func TestIcon(t *testing.T, db *DB, iconType string) *models.Icon {
	t.Helper()

	var icon models.Icon
	if err := db.Where("type = ?", iconType).Order("name").First(&icon).Error; err != nil {
		t.Fatalf("failed to load %s icon: %v", iconType, err)
	}
	return &icon
}

func TestColor(t *testing.T, db *DB) *models.Color {
	t.Helper()

	var color models.Color
	if err := db.Order("name").First(&color).Error; err != nil {
		t.Fatalf("failed to load color: %v", err)
	}
	return &color
}

func CreateTestAccount(t *testing.T, db *DB, owner *models.User, name string, initial string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:           name,
		InitialBalance: decimal.RequireFromString(initial),
		UserID:         owner.ID,
		FamilyID:       owner.FamilyID,
		IconID:         TestIcon(t, db, models.IconTypeAccount).ID,
		ColorID:        TestColor(t, db).ID,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCategory(t *testing.T, db *DB, owner *models.User, name string, shared bool) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     name,
		Shared:   shared,
		UserID:   owner.ID,
		FamilyID: owner.FamilyID,
		IconID:   TestIcon(t, db, models.IconTypeCategory).ID,
		ColorID:  TestColor(t, db).ID,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, account *models.Account, category *models.Category, txType, amount string, at time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Amount:    decimal.RequireFromString(amount),
		Type:      txType,
		UserID:    account.UserID,
		AccountID: account.ID,
		FamilyID:  account.FamilyID,
		Datetime:  at,
	}
	if category != nil {
		transaction.CategoryID = &category.ID
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"categories",
		"accounts",
		"invitations",
		"audit_logs",
		"blacklisted_tokens",
		"users",
		"families",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// UniqueEmail returns an address that will not collide inside one test database.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, strings.ReplaceAll(uuid.NewString()[:8], "-", ""))
}
