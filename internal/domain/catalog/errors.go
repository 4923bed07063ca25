package catalog

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOutOfStock         = errors.New("requested quantity exceeds stock")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
