package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(ctx context.Context, dsn string) error {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	DB = gdb
	return nil
}

// Migrate applies AutoMigrate for the given models plus the hand-written
// indexes gorm does not express.
func Migrate(gdb *gorm.DB, models ...interface{}) error {
	if err := gdb.AutoMigrate(models...); err != nil {
		return err
	}

	stmts := []string{
		`create index if not exists idx_entries_user_created on journal_entries(user_id, created_at desc);`,
		`create index if not exists idx_entries_user_theme on journal_entries(user_id, theme);`,
		`create index if not exists idx_insights_entry on reflection_insights(entry_id);`,
		`create unique index if not exists uq_users_email on users(email);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}
	return nil
}
