package templates

import "context"

// Repo defines persistence for template handles.
type Repo interface {
	Create(ctx context.Context, template Template) error
	GetByID(ctx context.Context, templateID string) (Template, error)
	List(ctx context.Context) ([]Template, error)
}
