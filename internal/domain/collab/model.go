// Package collab manages project collaborators.
package collab

import "time"

// Collaborator is a person attached to a project.
type Collaborator struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email,omitempty"`
	Role      string    `json:"role"`
	AddedAt   time.Time `json:"added_at"`
}
