package catalog

import (
	"context"
	"log"

	dom "example.com/bookstore-storefront/internal/domain/catalog"
)

type Service struct {
	source dom.Source
}

func NewService(source dom.Source) *Service {
	return &Service{source: source}
}

func (s *Service) Products(ctx context.Context) ([]dom.Product, error) {
	return s.source.Products(ctx)
}

func (s *Service) ProductsByCategory(ctx context.Context, slug string) ([]dom.Product, error) {
	return s.source.ProductsByCategory(ctx, slug)
}

func (s *Service) Product(ctx context.Context, id int64) (*dom.Product, error) {
	return s.source.ProductByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, term string) ([]dom.Product, error) {
	return s.source.Search(ctx, term)
}

func (s *Service) Categories(ctx context.Context) ([]dom.Category, error) {
	return s.source.Categories(ctx)
}

// PrefetchProduct warms the cache ahead of an anticipated visit. Best effort
// and fire-and-forget: a prefetch that fails is discarded, and there is no
// ordering relationship with a later explicit fetch.
func (s *Service) PrefetchProduct(id int64) {
	go func() {
		if _, err := s.source.ProductByID(context.Background(), id); err != nil {
			log.Printf("catalog: prefetch product %d discarded: %v", id, err)
		}
	}()
}

func (s *Service) PrefetchCategory(slug string) {
	go func() {
		if _, err := s.source.ProductsByCategory(context.Background(), slug); err != nil {
			log.Printf("catalog: prefetch category %q discarded: %v", slug, err)
		}
	}()
}
