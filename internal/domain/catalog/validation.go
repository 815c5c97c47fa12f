package catalog

import (
	"context"
	"fmt"
	"strings"
)

const maxNameLen = 100

type nameChecker interface {
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// validateName applies the shared reference-entity name rules: required,
// non-empty after trim, bounded length, unique among rows of the same
// kind. excludeID carries the id of the row being edited; nil means a new
// row with no exclusion.
func validateName(ctx context.Context, repo nameChecker, label, name string, excludeID *int64) ([]string, error) {
	var msgs []string

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		msgs = append(msgs, fmt.Sprintf("%s name is required", label))
		return msgs, nil
	}
	if len(trimmed) > maxNameLen {
		msgs = append(msgs, fmt.Sprintf("%s name must be at most %d characters", label, maxNameLen))
	}

	taken, err := repo.NameTaken(ctx, name, excludeID)
	if err != nil {
		return nil, fmt.Errorf("checking %s name uniqueness: %w", label, err)
	}
	if taken {
		msgs = append(msgs, fmt.Sprintf("a %s with this name already exists", label))
	}

	return msgs, nil
}
