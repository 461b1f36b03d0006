package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/businesscards/internal/entities"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the driver and connection target.
type Options struct {
	Driver string // "sqlite" (default) or "postgres"
	Path   string // sqlite file path
	DSN    string // postgres connection string
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(opts Options) (*Database, error) {
	dialector, target, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.BusinessCard{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.WithFields(log.Fields{"driver": opts.Driver, "target": target}).Info("Database initialized")

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func dialectorFor(opts Options) (gorm.Dialector, string, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		if opts.Path == "" {
			return nil, "", fmt.Errorf("database path is required for the sqlite driver")
		}
		return sqlite.Open(opts.Path), opts.Path, nil
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, "", fmt.Errorf("database DSN is required for the postgres driver")
		}
		// Never log the DSN, it carries credentials.
		return postgres.Open(opts.DSN), "postgres", nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// newGormLogger routes gorm output through logrus, following the global
// log level: SQL traces at debug, slow queries and errors otherwise.
func newGormLogger() logger.Interface {
	level := logger.Warn
	switch {
	case log.IsLevelEnabled(log.DebugLevel):
		level = logger.Info
	case !log.IsLevelEnabled(log.WarnLevel):
		level = logger.Error
	}

	return logger.New(log.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
