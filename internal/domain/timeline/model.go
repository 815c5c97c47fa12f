// Package timeline implements the platform-history engine: the
// append-only, date-keyed record of which platform is active for a
// project at any point in time.
//
// The history is a step function. An entry states "from this date
// forward, this platform is active"; its interval ends implicitly at the
// next entry's assigned date, or at "now" for the latest entry. At most
// one entry exists per (project, assigned date) pair, so assigning again
// on an existing date overwrites that entry in place.
package timeline

// Entry is one step of a project's platform history. PlatformName is
// resolved by the repository join for read paths.
type Entry struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	PlatformID   int64  `json:"platform_id"`
	PlatformName string `json:"platform_name,omitempty"`
	AssignedDate string `json:"assigned_date"`
	Description  string `json:"description,omitempty"`
}

// AssignRequest carries the inputs for assigning a platform to a project
// as of a date.
type AssignRequest struct {
	ProjectID    int64
	PlatformID   int64
	AssignedDate string
	Description  string
}
