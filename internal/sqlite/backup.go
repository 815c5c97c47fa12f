package sqlite

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Backup copies the database file verbatim to a timestamped sibling path
// and returns that path. In-memory databases cannot be backed up.
func (db *DB) Backup() (string, error) {
	if db.path == "" || db.path == ":memory:" || strings.Contains(db.path, "mode=memory") {
		return "", fmt.Errorf("cannot back up an in-memory database")
	}

	base := strings.TrimSuffix(db.path, ".db")
	backupPath := fmt.Sprintf("%s_backup_%d.db", base, time.Now().Unix())

	if err := copyFile(db.path, backupPath); err != nil {
		return "", fmt.Errorf("backing up database: %w", err)
	}
	return backupPath, nil
}

// Restore copies a backup file verbatim over the database file.
func (db *DB) Restore(backupPath string) error {
	if db.path == "" || db.path == ":memory:" || strings.Contains(db.path, "mode=memory") {
		return fmt.Errorf("cannot restore an in-memory database")
	}
	if err := copyFile(backupPath, db.path); err != nil {
		return fmt.Errorf("restoring database: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
