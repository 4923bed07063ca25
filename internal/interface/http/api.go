package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/bookstore-storefront/internal/domain/cart"
	domcatalog "example.com/bookstore-storefront/internal/domain/catalog"
	cartuc "example.com/bookstore-storefront/internal/usecase/cart"
	cataloguc "example.com/bookstore-storefront/internal/usecase/catalog"
	checkoutuc "example.com/bookstore-storefront/internal/usecase/checkout"
	"example.com/bookstore-storefront/internal/usecase/hero"
)

type API struct {
	catalogSvc  *cataloguc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	carousel    *hero.Carousel
	validator   *validator.Validate
}

type Dependencies struct {
	CatalogService  *cataloguc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	Carousel        *hero.Carousel
}

func NewAPI(deps Dependencies) *API {
	return &API{
		catalogSvc:  deps.CatalogService,
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		carousel:    deps.Carousel,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Get("/products/search", a.handleSearchProducts)
		r.Get("/products/{id}", a.handleGetProduct)
		r.Get("/categories", a.handleListCategories)

		r.Post("/prefetch/products/{id}", a.handlePrefetchProduct)
		r.Post("/prefetch/categories/{slug}", a.handlePrefetchCategory)

		r.Get("/hero", a.handleHeroSlide)

		r.Route("/cart", func(cr chi.Router) {
			cr.Get("/", a.handleGetCart)
			cr.Delete("/", a.handleClearCart)
			cr.Post("/items", a.handleAddCartItem)
			cr.Put("/items/{id}", a.handleUpdateCartItem)
			cr.Delete("/items/{id}", a.handleRemoveCartItem)
		})

		r.Post("/checkout", a.handleCheckout)
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

var errConfirmationRequired = errors.New("confirmation required")

// confirmed reports whether a destructive request carries the explicit
// confirmation the storefront asks for before removing or clearing.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func mapProduct(p *domcatalog.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"author":      p.Author,
		"price":       p.Price,
		"category":    p.Category,
		"category_id": p.CategoryID,
		"image":       p.Image,
		"description": p.Description,
		"stock":       p.Stock,
		"isbn":        p.ISBN,
		"publisher":   p.Publisher,
		"pages":       p.Pages,
		"language":    p.Language,
		"rating":      p.Rating,
	}
}

func mapProducts(products []domcatalog.Product) []map[string]any {
	out := make([]map[string]any, 0, len(products))
	for i := range products {
		out = append(out, mapProduct(&products[i]))
	}
	return out
}

func mapCategory(c *domcatalog.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"slug":        c.Slug,
		"count":       c.Count,
		"description": c.Description,
	}
}

func mapCartLine(line domcart.Line) map[string]any {
	return map[string]any{
		"product":    mapProduct(&line.Product),
		"quantity":   line.Quantity,
		"line_total": line.Product.Price * float64(line.Quantity),
	}
}

func mapOrder(o *checkoutuc.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, mapCartLine(line))
	}
	return map[string]any{
		"id":         o.ID,
		"status":     o.Status,
		"items":      items,
		"subtotal":   o.Subtotal,
		"shipping":   o.Shipping,
		"total":      o.Total,
		"created_at": o.CreatedAt,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcatalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcatalog.ErrOutOfStock),
		errors.Is(err, checkoutuc.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, errConfirmationRequired):
		respondError(w, http.StatusConflict, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
