package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/bookstore-storefront/internal/domain/catalog"
)

const productPayload = `{
	"id": 1, "title": "Tokyo Ghoul Vol. 1", "author": "Sui Ishida",
	"price": "12.99", "category": 1, "category_name": "Manga",
	"image_url": "https://example.com/tg.jpg", "description": "Ghouls.",
	"stock": 15, "isbn": "978-1421580364", "language": "Español", "rating": "4.50"
}`

func TestProducts_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/", r.URL.Path)
		w.Write([]byte(`{"count": 1, "results": [` + productPayload + `]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	products, err := client.Products(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Tokyo Ghoul Vol. 1", products[0].Title)
	require.Equal(t, "manga", products[0].Category)
	require.InDelta(t, 12.99, products[0].Price, 1e-9)
}

func TestProducts_ServerErrorReturnsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	products, err := client.Products(context.Background())

	require.NoError(t, err)
	require.Empty(t, products)
}

func TestProducts_MalformedBodyReturnsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	products, err := client.Products(context.Background())

	require.NoError(t, err)
	require.Empty(t, products)
}

func TestProductsByCategory_SendsSlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "manga", r.URL.Query().Get("category"))
		w.Write([]byte(`[` + productPayload + `]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	products, err := client.ProductsByCategory(context.Background(), "manga")

	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestSearch_EncodesTerm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "tokyo ghoul", r.URL.Query().Get("search"))
		w.Write([]byte(`[` + productPayload + `]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	products, err := client.Search(context.Background(), "tokyo ghoul")

	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductByID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/1/", r.URL.Path)
		w.Write([]byte(productPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	p, err := client.ProductByID(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, int64(1), p.ID)
	require.Equal(t, "Sui Ishida", p.Author)
}

func TestProductByID_FailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.ProductByID(context.Background(), 42)

	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCategories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/categories/", r.URL.Path)
		w.Write([]byte(`[{"id": 1, "name": "Manga", "slug": "manga", "product_count": 4}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	categories, err := client.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "manga", categories[0].Slug)
	require.Equal(t, int64(4), categories[0].Count)
}

func TestCategories_ServerErrorReturnsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	categories, err := client.Categories(context.Background())

	require.NoError(t, err)
	require.Empty(t, categories)
}

func TestCreateOrder_PostsPayloadAndDecodesAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var order Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		require.Len(t, order.Items, 1)
		require.Equal(t, int64(1), order.Items[0].ProductID)
		require.InDelta(t, 25.98, order.Total, 1e-9)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1001, "status": "created"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	ack, err := client.CreateOrder(context.Background(), Order{
		Items: []OrderLine{{ProductID: 1, Quantity: 2, Price: 12.99}},
		Total: 25.98,
	})

	require.NoError(t, err)
	require.Equal(t, int64(1001), ack.ID)
	require.Equal(t, "created", ack.Status)
}

func TestCreateOrder_FailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.CreateOrder(context.Background(), Order{})

	require.Error(t, err)
}
