package catalog

import "errors"

var (
	// ErrTypeNotFound indicates the project type doesn't exist.
	ErrTypeNotFound = errors.New("project type not found")
	// ErrPlatformNotFound indicates the platform doesn't exist.
	ErrPlatformNotFound = errors.New("platform not found")
)
