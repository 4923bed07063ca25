package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	domcatalog "example.com/bookstore-storefront/internal/domain/catalog"
	"example.com/bookstore-storefront/internal/infra/localstore"
	cartuc "example.com/bookstore-storefront/internal/usecase/cart"
	cataloguc "example.com/bookstore-storefront/internal/usecase/catalog"
	checkoutuc "example.com/bookstore-storefront/internal/usecase/checkout"
	"example.com/bookstore-storefront/internal/usecase/hero"
)

// fakeSource is a fixed catalog for handler tests.
type fakeSource struct {
	products   []domcatalog.Product
	categories []domcatalog.Category
}

func (f *fakeSource) Products(ctx context.Context) ([]domcatalog.Product, error) {
	return f.products, nil
}

func (f *fakeSource) ProductsByCategory(ctx context.Context, slug string) ([]domcatalog.Product, error) {
	out := []domcatalog.Product{}
	for _, p := range f.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSource) ProductByID(ctx context.Context, id int64) (*domcatalog.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cloned := p
			return &cloned, nil
		}
	}
	return nil, domcatalog.ErrProductNotFound
}

func (f *fakeSource) Search(ctx context.Context, term string) ([]domcatalog.Product, error) {
	term = strings.ToLower(term)
	out := []domcatalog.Product{}
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Author), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSource) Categories(ctx context.Context) ([]domcatalog.Category, error) {
	return f.categories, nil
}

func storefrontFixture() *fakeSource {
	return &fakeSource{
		products: []domcatalog.Product{
			{ID: 1, Title: "Tokyo Ghoul Vol. 1", Author: "Sui Ishida", Price: 12.99, Category: "manga", CategoryID: 1, Stock: 5},
			{ID: 2, Title: "One Piece Vol. 1", Author: "Eiichiro Oda", Price: 11.99, Category: "manga", CategoryID: 1, Stock: 25},
			{ID: 13, Title: "Dune", Author: "Frank Herbert", Price: 22.99, Category: "ciencia-ficcion", CategoryID: 4, Stock: 20},
		},
		categories: []domcatalog.Category{
			{ID: 1, Name: "Manga", Slug: "manga", Count: 2},
			{ID: 4, Name: "Ciencia Ficción", Slug: "ciencia-ficcion", Count: 1},
		},
	}
}

func newTestAPI(t *testing.T) (*API, *cartuc.Service) {
	t.Helper()
	cartSvc := cartuc.NewService(localstore.NewMemoryStore())
	catalogSvc := cataloguc.NewService(storefrontFixture())
	api := NewAPI(Dependencies{
		CatalogService:  catalogSvc,
		CartService:     cartSvc,
		CheckoutService: checkoutuc.NewService(cartSvc),
		Carousel:        hero.New(nil),
	})
	return api, cartSvc
}

func doRequest(t *testing.T, api *API, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func TestHealth(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListProducts_NoFilterReturnsCatalogInOrder(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Len(t, data, 3)
	require.Equal(t, "Tokyo Ghoul Vol. 1", data[0]["title"])
	require.Equal(t, "One Piece Vol. 1", data[1]["title"])
	require.Equal(t, "Dune", data[2]["title"])
}

func TestListProducts_CategoryQueryParam(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products?category=manga", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Len(t, data, 2)
	for _, p := range data {
		require.Equal(t, "manga", p["category"])
	}
}

func TestListProducts_SearchQueryParam(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products?search=DUNE", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Len(t, data, 1)
	require.Equal(t, "Dune", data[0]["title"])
}

func TestListProducts_CategoryAndSearchCombine(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products?category=manga&search=dune", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeData(t, rec))
}

func TestGetProduct_Success(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products/13", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var p map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, "Dune", p["title"])
	require.Equal(t, "Frank Herbert", p["author"])
}

func TestGetProduct_MissingRedirectsToLanding(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products/999", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSearchProducts_Endpoint(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products/search?q=herbert", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Len(t, data, 1)
	require.Equal(t, "Dune", data[0]["title"])
}

func TestSearchProducts_EmptyTermReturnsNothing(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/products/search", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeData(t, rec))
}

func TestListCategories(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/categories", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Len(t, data, 2)
	require.Equal(t, "manga", data[0]["slug"])
}

func TestPrefetchProduct_Accepted(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodPost, "/api/v1/prefetch/products/13", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestPrefetchProduct_UnknownIDStillAccepted(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodPost, "/api/v1/prefetch/products/999", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestPrefetchCategory_Accepted(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodPost, "/api/v1/prefetch/categories/manga", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHeroSlide(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := doRequest(t, api, http.MethodGet, "/api/v1/hero", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var slide map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slide))
	require.Equal(t, float64(0), slide["index"])
	require.NotEmpty(t, slide["title"])
}
