package profiles

import "context"

// Repo defines persistence operations for profile records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, userId, id string) (Record, error)
	GetCurrentByUser(ctx context.Context, userId string) (Record, error)
	List(ctx context.Context, userId string, limit, offset int) ([]Record, error)
	Update(ctx context.Context, rec Record) error
}
