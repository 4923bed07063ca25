package remote

import (
	"regexp"
	"strconv"
	"strings"

	"example.com/bookstore-storefront/internal/domain/catalog"
)

// Remote records use the backend's field naming; the adapter renames them to
// the internal catalog shape. Decimal fields (price, rating) arrive as
// strings.
type remoteProduct struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Price        string `json:"price"`
	Category     int64  `json:"category"`
	CategoryName string `json:"category_name"`
	ImageURL     string `json:"image_url"`
	Description  string `json:"description"`
	Stock        int64  `json:"stock"`
	ISBN         string `json:"isbn"`
	Publisher    string `json:"publisher"`
	Pages        int64  `json:"pages"`
	Language     string `json:"language"`
	Rating       string `json:"rating"`
}

type remoteCategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ProductCount int64  `json:"product_count"`
}

const (
	placeholderImage   = "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=600&fit=crop"
	defaultDescription = "Sin descripción disponible"
	defaultSlug        = "otros"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// slugify derives a filter-safe category slug from the remote category name.
func slugify(name string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	if slug == "" {
		return defaultSlug
	}
	return slug
}

func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func adaptProduct(rp remoteProduct) catalog.Product {
	image := rp.ImageURL
	if image == "" {
		image = placeholderImage
	}
	description := rp.Description
	if description == "" {
		description = defaultDescription
	}
	return catalog.Product{
		ID:          rp.ID,
		Title:       rp.Title,
		Author:      rp.Author,
		Price:       parseDecimal(rp.Price),
		Category:    slugify(rp.CategoryName),
		CategoryID:  rp.Category,
		Image:       image,
		Description: description,
		Stock:       rp.Stock,
		ISBN:        rp.ISBN,
		Publisher:   rp.Publisher,
		Pages:       rp.Pages,
		Language:    rp.Language,
		Rating:      parseDecimal(rp.Rating),
	}
}

func adaptProducts(rps []remoteProduct) []catalog.Product {
	products := make([]catalog.Product, 0, len(rps))
	for _, rp := range rps {
		products = append(products, adaptProduct(rp))
	}
	return products
}

func adaptCategory(rc remoteCategory) catalog.Category {
	return catalog.Category{
		ID:          rc.ID,
		Name:        rc.Name,
		Slug:        rc.Slug,
		Count:       rc.ProductCount,
		Description: rc.Description,
	}
}

func adaptCategories(rcs []remoteCategory) []catalog.Category {
	categories := make([]catalog.Category, 0, len(rcs))
	for _, rc := range rcs {
		categories = append(categories, adaptCategory(rc))
	}
	return categories
}
