package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()
	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)

	runner.WithPaths("custom/migrations", "")
	assert.Equal(t, "custom/migrations", runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db).WaitForDatabase()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db).WithPaths("/nonexistent/migrations", "")

	assert.NoError(t, runner.RunMigrations())

	_, _, err = runner.GetMigrationStatus()
	assert.ErrorIs(t, err, errMigrationsDirMissing)

	assert.Error(t, runner.Rollback(0))
	assert.ErrorIs(t, runner.Rollback(1), errMigrationsDirMissing)
}

func TestLoadSeeds(t *testing.T) {
	t.Run("disabled by environment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		t.Setenv("SEED_DATABASE", "false")

		assert.NoError(t, NewMigrationRunner(db).LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing directory is skipped", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		t.Setenv("SEED_DATABASE", "true")

		runner := NewMigrationRunner(db).WithPaths("", "/nonexistent/seeds")
		assert.NoError(t, runner.LoadSeeds())
	})

	t.Run("failing file does not stop the rest", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		t.Setenv("SEED_DATABASE", "true")

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "001_bad.sql"), []byte("INSERT INTO missing VALUES (1);"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "002_families.sql"), []byte("INSERT INTO families (name) VALUES ('Doe''s family');"), 0o644))

		mock.ExpectExec("INSERT INTO missing").WillReturnError(errors.New("relation does not exist"))
		mock.ExpectExec("INSERT INTO families").WillReturnResult(sqlmock.NewResult(0, 1))

		runner := NewMigrationRunner(db).WithPaths("", dir)
		assert.NoError(t, runner.LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		t.Setenv("SEED_DATABASE", "true")

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "001_dir.sql"), 0o755))

		err = NewMigrationRunner(db).WithPaths("", dir).LoadSeeds()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read seed file")
	})
}

func TestRunMigrationsIfEnabled(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		t.Setenv("AUTO_MIGRATE", "false")

		migrated, err := RunMigrationsIfEnabled(db)
		assert.NoError(t, err)
		assert.False(t, migrated)
	})

	t.Run("database never ready", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		t.Setenv("AUTO_MIGRATE", "true")
		fastRetries(t, 2)

		mock.ExpectPing().WillReturnError(errors.New("starting"))
		mock.ExpectPing().WillReturnError(errors.New("starting"))

		migrated, err := RunMigrationsIfEnabled(db)
		require.Error(t, err)
		assert.False(t, migrated)
		assert.Contains(t, err.Error(), "database readiness check failed")
	})
}
