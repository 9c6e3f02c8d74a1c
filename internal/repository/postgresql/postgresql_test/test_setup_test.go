package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
)

const migrationFile = "001_attendance_payroll.sql"

// TestDatabaseSetup is a migrated, empty test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, applies the schema and
// truncates every table. Tests are skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	ctx := context.Background()
	if err := setup.Migrate(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := setup.TruncateAllTables(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to truncate test database: %v", err)
	}

	t.Cleanup(setup.Close)
	return setup
}

func (s *TestDatabaseSetup) Migrate(ctx context.Context) error {
	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", migrationFile))
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, string(schema))
	return err
}

// TruncateAllTables removes all rows from every table
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"employees",
		"shift_schedules",
		"raw_punches",
		"attendance_overrides",
		"weekly_off_settings",
		"attendance_threshold_rules",
		"monthly_attendance_summaries",
		"salary_structures",
		"payroll_adjustments",
		"loan_records",
		"monthly_salary_records",
		"outbox_events",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
