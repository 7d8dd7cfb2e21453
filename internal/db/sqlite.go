package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens the embedded SQLite database for the document-store
// backend, creating the parent directory if needed.
func OpenSQLite(path string) (*gorm.DB, error) {
	if err := ensureSQLiteDirectory(path); err != nil {
		return nil, fmt.Errorf("ensure sqlite directory: %w", err)
	}

	gdb, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	log.Printf("sqlite database opened: %s", path)
	return gdb, nil
}

func ensureSQLiteDirectory(dsn string) error {
	candidate := strings.TrimSpace(dsn)
	if candidate == "" || candidate == ":memory:" {
		return nil
	}

	if strings.HasPrefix(strings.ToLower(candidate), "file:") {
		candidate = strings.TrimPrefix(candidate, "file:")
	}
	if idx := strings.Index(candidate, "?"); idx >= 0 {
		candidate = candidate[:idx]
	}

	dir := filepath.Dir(candidate)
	if dir == "" || dir == "." {
		return nil
	}

	return os.MkdirAll(dir, 0o755)
}
