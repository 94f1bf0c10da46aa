package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // register postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // register file source driver
	"go.uber.org/zap"

	"health-screen/internal/config"
	"health-screen/internal/logger"
)

// RunMigrations applies pending schema migrations for the configured driver.
// Postgres migrations are versioned by golang-migrate; Oracle scripts are run
// in file-name order and must be idempotent.
func RunMigrations(cfg *config.Config) error {
	dir := filepath.Join(cfg.DB.MigrationsPath, cfg.DB.Driver)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return RunPostgresMigrations(cfg.GetDSN(), "file://"+filepath.ToSlash(dir))
	case config.DriverOracle:
		db, err := sql.Open("oracle", cfg.GetDSN())
		if err != nil {
			return fmt.Errorf("could not open database: %w", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("could not ping database: %w", err)
		}
		return RunScriptMigrations(db, dir)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// RunPostgresMigrations runs all pending migrations from sourceURL
// (e.g. "file://migrations/postgres").
func RunPostgresMigrations(dsn, sourceURL string) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations up: %w", err)
	}
	return nil
}

// RunScriptMigrations executes every *.up.sql file in dir in name order.
// Statements inside a file are separated by a line holding only "/".
func RunScriptMigrations(db *sql.DB, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".up.sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	appLogger := logger.Get()
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		appLogger.Info("Executed migration", zap.String("file", name))
	}

	appLogger.Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}

// SplitStatements splits a script on lines containing only "/".
func SplitStatements(script string) []string {
	var stmts []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			stmts = append(stmts, s)
		}
		current.Reset()
	}
	for _, line := range strings.Split(script, "\n") {
		if strings.TrimSpace(line) == "/" {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()
	return stmts
}
