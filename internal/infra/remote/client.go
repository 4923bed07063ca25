package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"example.com/bookstore-storefront/internal/domain/catalog"
)

// Client reads the catalog from the remote API and normalizes every record
// through the adapter. List operations absorb failures and return an empty
// slice; ProductByID propagates them. There is no retry or backoff; a
// circuit breaker fails fast when the backend keeps misbehaving.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name: "catalog-api",
		}),
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", path, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
}

// decodeList accepts both the pagination envelope {"results": [...]} and a
// bare JSON list.
func decodeList[T any](data []byte) ([]T, error) {
	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return list, nil
}

func (c *Client) productList(ctx context.Context, query url.Values) ([]catalog.Product, error) {
	data, err := c.get(ctx, "/products/", query)
	if err != nil {
		return nil, err
	}
	records, err := decodeList[remoteProduct](data)
	if err != nil {
		return nil, err
	}
	return adaptProducts(records), nil
}

// absorb collapses a list-fetch failure to an empty result, logging it. The
// UI treats it as "no results".
func absorb(op string, products []catalog.Product, err error) ([]catalog.Product, error) {
	if err != nil {
		log.Printf("remote: %s: %v", op, fmt.Errorf("%w: %w", catalog.ErrCatalogUnavailable, err))
		return []catalog.Product{}, nil
	}
	return products, nil
}

func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	products, err := c.productList(ctx, nil)
	return absorb("products", products, err)
}

func (c *Client) ProductsByCategory(ctx context.Context, slug string) ([]catalog.Product, error) {
	query := url.Values{"category": {slug}}
	products, err := c.productList(ctx, query)
	return absorb("products by category", products, err)
}

func (c *Client) Search(ctx context.Context, term string) ([]catalog.Product, error) {
	query := url.Values{"search": {term}}
	products, err := c.productList(ctx, query)
	return absorb("search", products, err)
}

func (c *Client) ProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	data, err := c.get(ctx, fmt.Sprintf("/products/%d/", id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrProductNotFound, err)
	}
	var record remoteProduct
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: decode product: %w", catalog.ErrProductNotFound, err)
	}
	product := adaptProduct(record)
	return &product, nil
}

func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	data, err := c.get(ctx, "/categories/", nil)
	if err != nil {
		log.Printf("remote: categories: %v", fmt.Errorf("%w: %w", catalog.ErrCatalogUnavailable, err))
		return []catalog.Category{}, nil
	}
	records, err := decodeList[remoteCategory](data)
	if err != nil {
		log.Printf("remote: categories: %v", err)
		return []catalog.Category{}, nil
	}
	return adaptCategories(records), nil
}

// OrderLine and Order describe the order submission payload. The endpoint is
// part of the remote API surface but the storefront checkout never calls it;
// the flow is a simulated success.
type OrderLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	Items []OrderLine `json:"items"`
	Total float64     `json:"total"`
}

type OrderAck struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (c *Client) CreateOrder(ctx context.Context, order Order) (*OrderAck, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("create order: unexpected status %d", resp.StatusCode)
	}

	var ack OrderAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("create order: decode ack: %w", err)
	}
	return &ack, nil
}
