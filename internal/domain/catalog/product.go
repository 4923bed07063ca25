package catalog

// Product is an immutable catalog record. Category holds the category slug;
// CategoryID the numeric identifier the remote API uses for filtering.
type Product struct {
	ID          int64
	Title       string
	Author      string
	Price       float64
	Category    string
	CategoryID  int64
	Image       string
	Description string
	Stock       int64
	ISBN        string
	Publisher   string
	Pages       int64
	Language    string
	Rating      float64
}

type ListFilter struct {
	CategorySlug string
	Search       string
}
