// Package db owns the process wide database connection.
package db

import (
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db/dsn"
	"github.com/kj-requests/kj-requests/internal/db/models"
	"github.com/kj-requests/kj-requests/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 500 * time.Millisecond

// ErrConfigNil is returned when the connector has no database configuration.
var ErrConfigNil = errors.New("database config is nil")

// Connector opens the database on first use and hands out the same
// *gorm.DB for the rest of the process. A failed open is not cached,
// the next call tries again.
type Connector struct {
	cfg *config.DB

	mu sync.Mutex
	db *gorm.DB
}

// NewConnector creates a Connector for the given configuration.
func NewConnector(cfg *config.DB) *Connector {
	return &Connector{cfg: cfg}
}

// DB returns the shared connection, opening and migrating it if needed.
func (c *Connector) DB() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := Open(c.cfg)
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	c.db = db

	return c.db, nil
}

// Close releases the underlying connection pool.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}

	c.db = nil

	return errors.Wrap(sqlDB.Close(), "close database")
}

// Open opens a gorm connection with the configured engine.
func Open(cfg *config.DB) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	var dialector gorm.Dialector

	switch cfg.GormEngine {
	case config.EngineMySQL:
		dialector = mysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Create(cfg))
	case config.EngineSQLite, "":
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		return nil, errors.Wrapf(config.ErrUnknownGormEngine, "engine %q", cfg.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			stdlogger.NewComponent("gorm", zerolog.WarnLevel),
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", cfg.GormEngine)
	}

	// every pooled connection to :memory: would be a separate empty database
	if dialector.Name() == "sqlite" && dsn.Create(cfg) == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "get sql.DB")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("engine", cfg.GormEngine).Msg("database connection established")

	return db, nil
}

// Migrate creates or updates the application tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "migrate database")
	}

	return nil
}
