package catalog

import "context"

// Source provides catalog reads. List operations return an empty slice when
// the backing source is unavailable; ProductByID propagates the failure so
// callers can fall back to the landing view.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
	ProductsByCategory(ctx context.Context, slug string) ([]Product, error)
	ProductByID(ctx context.Context, id int64) (*Product, error)
	Search(ctx context.Context, term string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}
