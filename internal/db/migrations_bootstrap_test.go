package db

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "labassistant-clean.db")
	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	expectedTables := []string{"users", "tasks", "reagents", "experiments", "buffers", "data_points"}
	for _, table := range expectedTables {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected %s table to exist after migrations", table)
		}
	}

	assertUniqueUsernameIndexExists(t, database)
	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "labassistant-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstRecords := loadMigrationRecords(t, firstOpen)
	if len(firstRecords) == 0 {
		t.Fatal("expected at least one applied migration record")
	}

	firstSQLDB, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	secondOpen := openSQLiteForMigrationBootstrapTest(t, databasePath)
	secondRecords := loadMigrationRecords(t, secondOpen)

	if !reflect.DeepEqual(firstRecords, secondRecords) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", firstRecords, secondRecords)
	}
}

func TestOpenSQLiteEnforcesUniqueUsernames(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "labassistant-unique.db")
	database := openSQLiteForMigrationBootstrapTest(t, databasePath)

	insertSQL := `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	if err := database.Exec(insertSQL, "marie", "hash-one").Error; err != nil {
		t.Fatalf("insert first user: %v", err)
	}
	if err := database.Exec(insertSQL, "marie", "hash-two").Error; err == nil {
		t.Fatal("expected duplicate username insert to fail")
	}

	var matched int64
	if err := database.Raw(`SELECT COUNT(*) FROM users WHERE username = ?`, "marie").Scan(&matched).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if matched != 1 {
		t.Fatalf("expected exactly one marie row, got %d", matched)
	}
}

func openSQLiteForMigrationBootstrapTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func assertUniqueUsernameIndexExists(t *testing.T, database *gorm.DB) {
	t.Helper()

	var row struct {
		SQL string `gorm:"column:sql"`
	}
	if err := database.Raw(
		`SELECT sql FROM sqlite_master WHERE type = ? AND name = ?`,
		"index",
		"uidx_users_username",
	).Scan(&row).Error; err != nil {
		t.Fatalf("load username index definition: %v", err)
	}

	definition := strings.ToLower(strings.Join(strings.Fields(row.SQL), " "))
	if definition == "" {
		t.Fatal("expected unique username index definition to exist")
	}
	if !strings.Contains(definition, "unique index") {
		t.Fatalf("expected username index to be unique, got %q", row.SQL)
	}
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	expectedVersions := make([]string, 0, len(migrations))
	for _, migration := range migrations {
		expectedVersions = append(expectedVersions, migration.Version)
	}

	var rows []struct {
		Version string `gorm:"column:version"`
	}
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version ASC`).Scan(&rows).Error; err != nil {
		t.Fatalf("load applied migration versions: %v", err)
	}
	actualVersions := make([]string, 0, len(rows))
	for _, row := range rows {
		actualVersions = append(actualVersions, row.Version)
	}

	if !reflect.DeepEqual(expectedVersions, actualVersions) {
		t.Fatalf("unexpected applied migration versions: expected=%v actual=%v", expectedVersions, actualVersions)
	}
}

type migrationRecord struct {
	Version   string `gorm:"column:version"`
	Name      string `gorm:"column:name"`
	AppliedAt string `gorm:"column:applied_at"`
}

func loadMigrationRecords(t *testing.T, database *gorm.DB) []migrationRecord {
	t.Helper()

	records := make([]migrationRecord, 0)
	if err := database.Raw(
		`SELECT version, name, applied_at FROM schema_migrations ORDER BY version ASC`,
	).Scan(&records).Error; err != nil {
		t.Fatalf("load migration records: %v", err)
	}
	return records
}
