// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/kj-requests/kj-requests/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(dbCfg *config.DB) string {
	switch dbCfg.GormEngine {
	case config.EnginePostgres:
		return postgres(dbCfg)
	case config.EngineSQLite:
		return sqlite(dbCfg)
	default:
		return mysql(dbCfg)
	}
}

func mysql(dbCfg *config.DB) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Name,
		dbCfg.Extras,
	)
}

func postgres(dbCfg *config.DB) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Name,
	)

	// extras are libpq key=value pairs, e.g. "sslmode=disable TimeZone=UTC"
	if extras := strings.TrimSpace(dbCfg.Extras); extras != "" {
		out += " " + extras
	}

	return out
}

func sqlite(dbCfg *config.DB) string {
	if dbCfg.Path == "" {
		return ":memory:"
	}

	if dbCfg.Extras == "" {
		return dbCfg.Path
	}

	return dbCfg.Path + "?" + dbCfg.Extras
}
