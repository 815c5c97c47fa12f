// Package stats derives aggregate counts and deadline reports from the
// project store.
package stats

// Summary holds the dashboard aggregates.
type Summary struct {
	TotalProjects    int            `json:"total_projects"`
	StatusCounts     map[string]int `json:"status_counts"`
	TypeCounts       map[string]int `json:"type_counts"`
	ExpiringThisWeek int            `json:"expiring_this_week"`
}
