// internal/database/connection_test.go
package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orbitto/orbitto-backend/internal/config"
	"github.com/orbitto/orbitto-backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, RunMigrations(db))
	return db
}

func TestSeedInitialDataIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	cfg := config.AdminConfig{Email: "admin@orbitto.local", Password: "admin123!"}

	require.NoError(t, SeedInitialData(db, cfg))
	require.NoError(t, SeedInitialData(db, cfg))

	var admins []models.User
	require.NoError(t, db.Where("role = ?", models.UserRoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@orbitto.local", admins[0].Email)
	assert.NoError(t, admins[0].CheckPassword("admin123!"))
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	sentinel := errors.New("boom")
	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Customer{Name: "ACME", Email: "orders@acme.test", IsActive: true}).Error; err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
