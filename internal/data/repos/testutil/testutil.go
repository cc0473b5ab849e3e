package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/blogmanager-backend/internal/data/db"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

// DB opens a fresh in-memory database with the full schema. Every call gets its own
// database so tests never observe each other's rows.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	theDB, err := gorm.Open(sqlite.Open(db.InMemoryDSN(uuid.NewString())), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(theDB); err != nil {
		tb.Fatalf("automigrate: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close(theDB)
	})
	return theDB
}

// Tx begins a transaction that is rolled back when the test finishes.
func Tx(tb testing.TB, theDB *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := theDB.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
