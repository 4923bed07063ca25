package catalog

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Count       int64
	Description string
}
