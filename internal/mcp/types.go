package mcp

import (
	"github.com/devflowhq/devflow/internal/domain/catalog"
	"github.com/devflowhq/devflow/internal/domain/collab"
	"github.com/devflowhq/devflow/internal/domain/notify"
	"github.com/devflowhq/devflow/internal/domain/project"
	"github.com/devflowhq/devflow/internal/domain/stats"
	"github.com/devflowhq/devflow/internal/domain/timeline"
	"github.com/devflowhq/devflow/internal/domain/transfer"
)

// Catalog params.

type NameParams struct {
	Name        string `json:"name" jsonschema:"Unique display name"`
	Description string `json:"description,omitempty" jsonschema:"Free text description"`
}

type IDParams struct {
	ID int64 `json:"id" jsonschema:"Row id"`
}

type UpdateNameParams struct {
	ID          int64  `json:"id" jsonschema:"Row id"`
	Name        string `json:"name" jsonschema:"Unique display name"`
	Description string `json:"description,omitempty" jsonschema:"Free text description"`
}

type EmptyParams struct{}

// Project params.

type CreateProjectParams struct {
	Name          string  `json:"name" jsonschema:"Unique project name"`
	Description   string  `json:"description,omitempty"`
	ProjectTypeID int64   `json:"project_type_id" jsonschema:"Id of an existing project type"`
	StartDate     string  `json:"start_date" jsonschema:"Start date, YYYY-MM-DD"`
	EndDate       *string `json:"end_date,omitempty" jsonschema:"Planned end date, YYYY-MM-DD"`
	Status        string  `json:"status,omitempty" jsonschema:"Planning, InDevelopment, Testing, Deployment, Completed or Cancelled"`
}

type UpdateProjectParams struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	ProjectTypeID int64   `json:"project_type_id"`
	StartDate     string  `json:"start_date" jsonschema:"Start date, YYYY-MM-DD"`
	EndDate       *string `json:"end_date,omitempty" jsonschema:"Planned end date, YYYY-MM-DD"`
	Status        string  `json:"status,omitempty"`
}

type SearchProjectsParams struct {
	Query         string `json:"query,omitempty" jsonschema:"Substring matched against name and description"`
	Status        string `json:"status,omitempty" jsonschema:"Filter by lifecycle status"`
	ProjectTypeID *int64 `json:"project_type_id,omitempty" jsonschema:"Filter by project type id"`
}

// Timeline params.

type AssignPlatformParams struct {
	ProjectID    int64  `json:"project_id"`
	PlatformID   int64  `json:"platform_id"`
	AssignedDate string `json:"assigned_date,omitempty" jsonschema:"Effective date, YYYY-MM-DD; defaults to today"`
	Description  string `json:"description,omitempty"`
}

type PlatformAsOfParams struct {
	ProjectID int64  `json:"project_id"`
	Date      string `json:"date" jsonschema:"Point-in-time date, YYYY-MM-DD"`
}

type ProjectIDParams struct {
	ProjectID int64 `json:"project_id"`
}

// Collaborator params.

type AddCollaboratorParams struct {
	ProjectID int64  `json:"project_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email,omitempty"`
	Role      string `json:"role,omitempty" jsonschema:"Defaults to member"`
}

// Notification params.

type ListNotificationsParams struct {
	UnreadOnly bool `json:"unread_only,omitempty"`
	Limit      int  `json:"limit,omitempty" jsonschema:"Maximum entries to return, defaults to 10"`
}

type AddNotificationParams struct {
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty" jsonschema:"info, success, warning or error"`
}

// Stats params.

type UpcomingDeadlinesParams struct {
	Days int `json:"days,omitempty" jsonschema:"Look-ahead window in days, defaults to 7"`
}

// Transfer and maintenance params.

type ImportProjectsParams struct {
	Content string `json:"content" jsonschema:"CSV document to import"`
	Strict  bool   `json:"strict,omitempty" jsonschema:"Reject rows that fail domain validation"`
}

type RestoreDatabaseParams struct {
	BackupPath string `json:"backup_path" jsonschema:"Path to a backup file created by backup_database"`
}

// Results.

type ProjectTypeListResult struct {
	ProjectTypes []catalog.ProjectType `json:"project_types"`
}

type PlatformListResult struct {
	Platforms []catalog.Platform `json:"platforms"`
}

type ProjectListResult struct {
	Projects []project.Project `json:"projects"`
}

type TimelineEntryResult struct {
	Entry timeline.Entry `json:"entry"`
}

type TimelineHistoryResult struct {
	Entries []timeline.Entry `json:"entries"`
}

type CollaboratorListResult struct {
	Collaborators []collab.Collaborator `json:"collaborators"`
}

type NotificationListResult struct {
	Notifications []notify.Notification `json:"notifications"`
}

type IDResult struct {
	ID int64 `json:"id"`
}

type StatisticsResult struct {
	Summary stats.Summary `json:"summary"`
}

type UpdatedResult struct {
	Updated bool `json:"updated"`
}

type DeletedResult struct {
	Deleted bool `json:"deleted"`
}

type ExportResult struct {
	CSV string `json:"csv"`
}

type ImportProjectsResult struct {
	Result transfer.ImportResult `json:"result"`
}

type BackupResult struct {
	BackupPath string `json:"backup_path"`
}

type StatusResult struct {
	Status string `json:"status"`
}
