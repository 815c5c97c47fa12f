package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devflowhq/devflow/internal/domain/validation"
)

const maxNameLen = 200

// ValidateInput carries the prospective field values for a project write.
// ExcludeID identifies the project being edited so its own name doesn't
// count as a collision; nil means a new project with no exclusion.
type ValidateInput struct {
	Name          string
	Description   string
	ProjectTypeID int64
	StartDate     string
	EndDate       *string
	ExcludeID     *int64
}

// Validate returns the violation messages for a prospective project, one
// per violated rule. An empty list means valid. The uniqueness check
// reads current storage state; the schema-level unique index remains the
// authoritative guard against concurrent writers.
func (s *Service) Validate(ctx context.Context, in ValidateInput) ([]string, error) {
	var msgs []string

	trimmed := strings.TrimSpace(in.Name)
	if trimmed == "" {
		msgs = append(msgs, "project name is required")
	} else if len(trimmed) > maxNameLen {
		msgs = append(msgs, fmt.Sprintf("project name must be at most %d characters", maxNameLen))
	}

	if in.ProjectTypeID == 0 {
		msgs = append(msgs, "project type is required")
	}

	startOK := false
	if in.StartDate == "" {
		msgs = append(msgs, "start date is required")
	} else if !validation.ValidDate(in.StartDate) {
		msgs = append(msgs, "invalid start date format (expected YYYY-MM-DD)")
	} else {
		startOK = true
	}

	if in.EndDate != nil && *in.EndDate != "" {
		if !validation.ValidDate(*in.EndDate) {
			msgs = append(msgs, "invalid end date format (expected YYYY-MM-DD)")
		} else if startOK {
			start, _ := time.Parse(validation.DateLayout, in.StartDate)
			end, _ := time.Parse(validation.DateLayout, *in.EndDate)
			if end.Before(start) {
				msgs = append(msgs, "end date must be on or after the start date")
			}
		}
	}

	if trimmed != "" {
		taken, err := s.repo.NameTaken(ctx, in.Name, in.ExcludeID)
		if err != nil {
			return nil, fmt.Errorf("checking project name uniqueness: %w", err)
		}
		if taken {
			msgs = append(msgs, "a project with this name already exists")
		}
	}

	return msgs, nil
}
