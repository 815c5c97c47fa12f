package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `DevFlow tracks software projects, the platforms they run on over time,
and their collaborators. A project's platform history is a step function:
each entry says "from this date forward the project runs on this
platform", and get_platform_as_of answers what was active at any date.
Dates are YYYY-MM-DD strings.`

// Services contains all domain services needed by MCP.
type Services struct {
	Catalog     CatalogService
	Projects    ProjectService
	Timeline    TimelineService
	Collab      CollabService
	Notify      NotifyService
	Stats       StatsService
	Transfer    TransferService
	Maintenance Maintenance
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "devflow",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
