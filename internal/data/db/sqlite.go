package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// InMemoryDSN names a private shared-cache in-memory database. Connections that use the
// same name see the same data for as long as at least one of them stays open.
func InMemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

func openSQLite(dsn string, log *logger.Logger) (*gorm.DB, error) {
	serviceLog := log.With("service", "SQLiteService")
	serviceLog.Info("Opening SQLite database...")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newGormLogger(serviceLog),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	return db, nil
}
