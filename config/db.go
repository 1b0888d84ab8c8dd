package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-pkgz/lgr"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects to the configured database. In-memory sqlite is pinned to a
// single connection that never expires, otherwise each pooled connection
// would see its own empty database.
func OpenDB(cfg *Config, l lgr.L) (*gorm.DB, error) {
	dbConf := cfg.Database

	level := logger.Warn
	if cfg.App.Debug {
		level = logger.Info
	}
	gormConf := &gorm.Config{
		Logger: logger.New(lgr.ToStdLogger(l, "WARN"), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var dialector gorm.Dialector
	switch dbConf.Driver {
	case "sqlite":
		dialector = sqlite.Open(dbConf.DSN)
	case "postgres":
		dsn := dbConf.DSN
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
				dbConf.Host, dbConf.Port, dbConf.User, dbConf.Password, dbConf.Name, dbConf.Sslmode, dbConf.Timezone,
			)
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbConf.Driver)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("set up database: %w", err)
	}
	if isMemorySQLite(dbConf.Driver, dbConf.DSN) {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		return db, nil
	}
	sqlDB.SetMaxIdleConns(dbConf.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConf.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func isMemorySQLite(driver, dsn string) bool {
	return driver == "sqlite" && (dsn == ":memory:" || dsn == "" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:"))
}
