// Package project implements the core project entity: lifecycle status,
// dated bounds, and the write paths that keep the platform timeline and
// notification log in step with project creation and deletion.
package project

import "time"

// Status is the lifecycle status of a project.
type Status string

const (
	StatusPlanning      Status = "Planning"
	StatusInDevelopment Status = "InDevelopment"
	StatusTesting       Status = "Testing"
	StatusDeployment    Status = "Deployment"
	StatusCompleted     Status = "Completed"
	StatusCancelled     Status = "Cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInDevelopment, StatusTesting, StatusDeployment, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project represents a tracked software project. ProjectTypeName is a
// read-side convenience resolved by the repository join, never stored.
type Project struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	ProjectTypeID   int64      `json:"project_type_id"`
	ProjectTypeName string     `json:"project_type_name,omitempty"`
	StartDate       string     `json:"start_date"`
	EndDate         *string    `json:"end_date,omitempty"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// SearchFilter narrows a project search. All supplied filters are ANDed.
type SearchFilter struct {
	Query         string
	Status        *Status
	ProjectTypeID *int64
}
