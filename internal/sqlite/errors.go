package sqlite

import (
	"strings"

	"github.com/devflowhq/devflow/internal/repository"
)

// mapConstraintError translates SQLite constraint failures on the given
// unique column (e.g. "projects.name") into repository sentinels.
func mapConstraintError(err error, uniqueColumn string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed: "+uniqueColumn) {
		return repository.ErrDuplicateName
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return repository.ErrForeignKeyViolation
	}
	return err
}
