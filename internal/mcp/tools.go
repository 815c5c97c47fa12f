package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools registers all tools on the server.
func registerTools(server *sdkmcp.Server, services Services) {
	h := NewHandler(services)

	// Project types
	addTool(server, "create_project_type", "Create a new project type",
		h.CreateProjectType)
	addTool(server, "get_project_type", "Get a project type by id",
		h.GetProjectType)
	addToolNoParams(server, "list_project_types", "List all project types",
		h.ListProjectTypes)
	addTool(server, "update_project_type", "Update a project type's name and description",
		h.UpdateProjectType)
	addTool(server, "delete_project_type", "Delete a project type",
		h.DeleteProjectType)

	// Platforms
	addTool(server, "create_platform", "Create a new platform",
		h.CreatePlatform)
	addTool(server, "get_platform", "Get a platform by id",
		h.GetPlatform)
	addToolNoParams(server, "list_platforms", "List all platforms",
		h.ListPlatforms)
	addTool(server, "update_platform", "Update a platform's name and description",
		h.UpdatePlatform)
	addTool(server, "delete_platform", "Delete a platform",
		h.DeletePlatform)

	// Projects
	addTool(server, "create_project", "Create a new project; its platform history is seeded at the start date",
		h.CreateProject)
	addTool(server, "get_project", "Get a project by id",
		h.GetProject)
	addTool(server, "update_project", "Update a project",
		h.UpdateProject)
	addTool(server, "delete_project", "Delete a project and its platform history and collaborators",
		h.DeleteProject)
	addTool(server, "search_projects", "Search projects by text, status and type",
		h.SearchProjects)

	// Platform timeline
	addTool(server, "assign_platform", "Assign a platform to a project as of a date; assigning on an existing date overwrites that entry",
		h.AssignPlatform)
	addTool(server, "get_platform_as_of", "Get the platform a project was on at a given date",
		h.PlatformAsOf)
	addTool(server, "get_platform_history", "Get a project's full platform history, oldest first",
		h.PlatformHistory)

	// Collaborators
	addTool(server, "add_collaborator", "Add a collaborator to a project",
		h.AddCollaborator)
	addTool(server, "list_collaborators", "List a project's collaborators",
		h.ListCollaborators)
	addTool(server, "remove_collaborator", "Remove a collaborator",
		h.RemoveCollaborator)

	// Notifications
	addTool(server, "list_notifications", "List recent or unread notifications",
		h.ListNotifications)
	addTool(server, "mark_notification_read", "Mark a notification as read",
		h.MarkNotificationRead)
	addTool(server, "add_notification", "Add a notification to the log",
		h.AddNotification)

	// Dashboard
	addToolNoParams(server, "get_statistics", "Get project counts by status and type plus the expiring-soon count",
		h.GetStatistics)
	addTool(server, "get_upcoming_deadlines", "List active projects whose end date falls within the next N days",
		h.UpcomingDeadlines)

	// CSV transfer
	addToolNoParams(server, "export_projects_csv", "Export all projects as a CSV document",
		h.ExportProjects)
	addTool(server, "import_projects_csv", "Import projects from a CSV document",
		h.ImportProjects)

	// Maintenance
	addToolNoParams(server, "backup_database", "Copy the database file to a timestamped backup",
		h.BackupDatabase)
	addTool(server, "restore_database", "Replace the database file with a backup",
		h.RestoreDatabase)
}

func addTool[In, Out any](server *sdkmcp.Server, name, description string, fn func(context.Context, In) (Out, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		out, err := fn(ctx, in)
		return nil, out, err
	})
}

func addToolNoParams[Out any](server *sdkmcp.Server, name, description string, fn func(context.Context) (Out, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in EmptyParams) (*sdkmcp.CallToolResult, Out, error) {
		out, err := fn(ctx)
		return nil, out, err
	})
}
