package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rohansood98/ggs-accounting/internal/auth"
	"github.com/rohansood98/ggs-accounting/internal/models"
)

// Models is the full schema, in creation order.
var Models = []any{
	&models.User{},
	&models.Customer{},
	&models.Item{},
	&models.InventoryLot{},
	&models.Invoice{},
	&models.InvoiceItem{},
	&models.SaleTag{},
	&models.PurchaseTag{},
	&models.Payment{},
	&models.Setting{},
	&models.SavedQuery{},
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

// Connect opens (or creates) the database and ensures the schema exists.
// A DSN starting with postgres:// selects the postgres driver; anything else
// is treated as a sqlite file path, the usual single-file deployment.
// Schema creation runs via AutoMigrate unless MIGRATIONS=1|true selects the
// SQL migrations in ./migrations. When the users table is empty a bootstrap
// admin/admin account is created.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	dsn = strings.Trim(strings.TrimSpace(dsn), "\"'")
	if dsn == "" {
		return nil, errors.New("database DSN is empty, check the environment configuration")
	}

	logLevel := gormlogger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = gormlogger.Info
	}
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)}

	var (
		conn *gorm.DB
		err  error
	)
	if isPostgres(dsn) {
		conn, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		if dir := filepath.Dir(dsn); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, fmt.Errorf("create database directory: %w", mkErr)
			}
		}
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	masked := passwordRegex.ReplaceAllString(dsn, `${1}***`)
	log.Info("using database", zap.String("dsn", masked))

	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"users", "customers", "invoices", "inventory"} {
		if !conn.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}

	if err := ensureDefaultAdmin(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func isPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// ensureDefaultAdmin creates the bootstrap admin/admin account when no user
// exists yet, so a fresh database is always reachable.
func ensureDefaultAdmin(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := auth.HashPassword("admin")
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}
	admin := models.User{Username: "admin", PasswordHash: hash, Role: auth.RoleAdmin}
	if err := conn.Create(&admin).Error; err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	return nil
}
