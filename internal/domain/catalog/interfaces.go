package catalog

import "context"

// TypeRepository provides persistence for project types.
type TypeRepository interface {
	Create(ctx context.Context, pt *ProjectType) (int64, error)
	Get(ctx context.Context, id int64) (*ProjectType, error)
	List(ctx context.Context) ([]ProjectType, error)
	Update(ctx context.Context, pt *ProjectType) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// PlatformRepository provides persistence for platforms.
type PlatformRepository interface {
	Create(ctx context.Context, p *Platform) (int64, error)
	Get(ctx context.Context, id int64) (*Platform, error)
	List(ctx context.Context) ([]Platform, error)
	Update(ctx context.Context, p *Platform) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID *int64) (bool, error)
}
