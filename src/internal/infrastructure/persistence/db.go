package persistence

import (
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendancestore "github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence/attendance"
	auditstore "github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence/audit"
	memberstore "github.com/ministerio-uziel/portal/src/internal/infrastructure/persistence/member"

	"github.com/ministerio-uziel/portal/src/internal/domain/shared"
)

// Open connects to the SQLite backend and migrates the portal tables.
// path may be ":memory:" (tests, quick start) or a file path.
//
// SQLite serializes writers; a single connection avoids spurious
// busy errors under the transaction manager's retry loop.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, shared.ErrStoreUnavailable.WithContext("path", path, "cause", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, shared.ErrStoreUnavailable.WithContext("cause", err.Error())
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(
		&memberstore.MemberModel{},
		&attendancestore.RecordModel{},
		&auditstore.EntryModel{},
	); err != nil {
		return nil, shared.ErrStoreUnavailable.WithContext("cause", err.Error())
	}

	slog.Debug("sqlite store ready", "path", path)
	return db, nil
}
