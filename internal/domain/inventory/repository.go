package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	// List devuelve por last_updated DESC.
	List(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, it Item) error
}
