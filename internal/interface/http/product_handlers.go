package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcatalog "example.com/bookstore-storefront/internal/domain/catalog"
	cataloguc "example.com/bookstore-storefront/internal/usecase/catalog"
)

// handleListProducts is the landing view: the full catalog narrowed by the
// category and search query parameters, which makes the filters
// deep-linkable.
func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := domcatalog.ListFilter{
		CategorySlug: r.URL.Query().Get("category"),
		Search:       r.URL.Query().Get("search"),
	}

	products, err := a.catalogSvc.Products(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	categories, err := a.catalogSvc.Categories(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	visible := cataloguc.Filter(products, categories, filter)
	writeJSON(w, http.StatusOK, map[string]any{"data": mapProducts(visible)})
}

func (a *API) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}})
		return
	}

	products, err := a.catalogSvc.Search(r.Context(), term)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapProducts(products)})
}

// handleGetProduct redirects to the landing view when the lookup fails,
// instead of rendering an error state.
func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	p, err := a.catalogSvc.Product(r.Context(), id)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// Prefetch endpoints warm the catalog cache ahead of an anticipated visit.
// They always accept: a prefetch that fails is simply discarded.
func (a *API) handlePrefetchProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	a.catalogSvc.PrefetchProduct(id)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (a *API) handlePrefetchCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	a.catalogSvc.PrefetchCategory(slug)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
