// Package transfer implements CSV export and import of project rows.
package transfer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
)

// Header is the fixed CSV column order for project rows.
var Header = []string{"ID", "Name", "Description", "ProjectTypeName", "StartDate", "EndDate", "Status", "CreatedAt", "UpdatedAt"}

// ProjectStore is the project surface transfer needs: full listing for
// export, validated and trusted creation for import.
type ProjectStore interface {
	Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	CreateTrusted(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

// TypeLister resolves project type names during import.
type TypeLister interface {
	ListTypes(ctx context.Context) ([]catalog.ProjectType, error)
}

// Notifier records the import summary.
type Notifier interface {
	Add(ctx context.Context, title, message string, typ notify.Type) (int64, error)
}

// Service handles CSV round-trips.
type Service struct {
	projects ProjectStore
	types    TypeLister
	notifier Notifier
	logger   *slog.Logger
}

// NewService creates a new transfer service.
func NewService(projects ProjectStore, types TypeLister, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{projects: projects, types: types, notifier: notifier, logger: logger}
}

// ExportCSV serializes all projects, newest first, with the fixed
// header.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	projects, err := s.projects.Search(ctx, project.SearchFilter{})
	if err != nil {
		return "", fmt.Errorf("listing projects for export: %w", err)
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("writing export header: %w", err)
	}
	for _, p := range projects {
		endDate := ""
		if p.EndDate != nil {
			endDate = *p.EndDate
		}
		updatedAt := ""
		if p.UpdatedAt != nil {
			updatedAt = p.UpdatedAt.Format(time.RFC3339)
		}
		row := []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Description,
			p.ProjectTypeName,
			p.StartDate,
			endDate,
			string(p.Status),
			p.CreatedAt.Format(time.RFC3339),
			updatedAt,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing export: %w", err)
	}
	return buf.String(), nil
}

// ImportOptions controls import policy. Strict runs full project
// validation per row, so name collisions become row errors; the default
// permissive mode treats rows as authoritative and only storage-level
// constraints apply.
type ImportOptions struct {
	Strict bool
}

// ImportResult reports the outcome of one import run.
type ImportResult struct {
	BatchID  string   `json:"batch_id"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportCSV parses content and creates a new project per valid row.
// Import always creates, never updates. Row failures are collected, not
// fatal; already-imported rows stay imported.
func (s *Service) ImportCSV(ctx context.Context, content string, opts ImportOptions) (*ImportResult, error) {
	types, err := s.types.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing project types for import: %w", err)
	}
	typeIDs := make(map[string]int64, len(types))
	for _, t := range types {
		typeIDs[t.Name] = t.ID
	}

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading import header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Name", "ProjectTypeName", "StartDate"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("import header missing column %q", required)
		}
	}

	result := &ImportResult{BatchID: uuid.NewString()}
	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("malformed row: %v", err))
			continue
		}

		name := field(row, "Name")
		typeName := field(row, "ProjectTypeName")
		typeID, ok := typeIDs[typeName]
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("project type %q not found for project %q", typeName, name))
			continue
		}

		req := project.CreateRequest{
			Name:          name,
			Description:   field(row, "Description"),
			ProjectTypeID: typeID,
			StartDate:     field(row, "StartDate"),
			Status:        project.Status(field(row, "Status")),
		}
		if end := field(row, "EndDate"); end != "" {
			req.EndDate = &end
		}

		if opts.Strict {
			_, err = s.projects.Create(ctx, req)
		} else {
			_, err = s.projects.CreateTrusted(ctx, req)
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("importing project %q: %v", name, err))
			continue
		}
		result.Imported++
	}

	if _, err := s.notifier.Add(ctx,
		"Project Import Completed",
		fmt.Sprintf("Imported %d projects, %d errors (batch %s).", result.Imported, len(result.Errors), result.BatchID),
		notify.TypeInfo,
	); err != nil {
		s.log().Warn("import notification failed", "batch_id", result.BatchID, "error", err)
	}

	return result, nil
}

func (s *Service) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
