package database

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/sijms/go-ora/v2" // registers the "oracle" driver
	"go.uber.org/zap"

	"health-screen/internal/config"
	"health-screen/internal/logger"
)

// driverNames maps configured drivers onto registered database/sql names.
var driverNames = map[string]string{
	config.DriverPostgres: "pgx",
	config.DriverOracle:   "oracle",
}

func init() {
	// go-ora registers as "oracle", which sqlx does not know.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// Open connects to the configured database, applies pool limits and pings it.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driverName, ok := driverNames[cfg.DB.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, driverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DB.Driver, err)
	}
	Configure(db, cfg.DB)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}

	logger.Get().Info("Connected to database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("name", cfg.DB.DBName),
	)
	return db, nil
}

// Configure applies pool limits and column-name mapping to db.
// Oracle reports unquoted column names in upper case, so struct tags are
// upper-cased for it.
func Configure(db *sqlx.DB, cfg config.DBConfig) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.Driver == config.DriverOracle {
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	}
}
