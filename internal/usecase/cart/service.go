package cart

import (
	"encoding/json"
	"log"
	"sync"

	domcart "example.com/bookstore-storefront/internal/domain/cart"
	domcatalog "example.com/bookstore-storefront/internal/domain/catalog"
	"example.com/bookstore-storefront/internal/infra/localstore"
)

// Service is the single source of truth for the shopping cart. It is built
// once at the composition root and passed by reference to every consumer;
// a mutex stands in for the single UI thread of the original storefront.
//
// Every mutation persists the full cart to the injected store. A missing or
// malformed stored value hydrates to an empty cart; save failures are logged
// and do not fail the mutation.
type Service struct {
	mu    sync.Mutex
	cart  domcart.Cart
	store localstore.Store
}

func NewService(store localstore.Store) *Service {
	s := &Service{store: store}
	s.hydrate()
	return s
}

func (s *Service) hydrate() {
	data, ok, err := s.store.Load()
	if err != nil {
		log.Printf("cart: load failed, starting empty: %v", err)
		return
	}
	if !ok {
		return
	}
	lines, err := decodeLines(data)
	if err != nil {
		log.Printf("cart: stored value malformed, starting empty: %v", err)
		return
	}
	s.cart.Lines = lines
}

func (s *Service) persist() {
	data, err := encodeLines(s.cart.Lines)
	if err != nil {
		log.Printf("cart: encode failed: %v", err)
		return
	}
	if err := s.store.Save(data); err != nil {
		log.Printf("cart: save failed: %v", err)
	}
}

// Add merges quantity into the existing line for the product, or appends a
// new line. The stock ceiling is the calling view's concern, not enforced
// here.
func (s *Service) Add(p domcatalog.Product, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p, quantity)
	s.persist()
}

func (s *Service) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.persist()
}

// UpdateQuantity overwrites the line's quantity; zero or negative removes
// the line.
func (s *Service) UpdateQuantity(productID int64, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, quantity)
	s.persist()
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.persist()
}

func (s *Service) ItemCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Service) Contains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Contains(productID)
}

func (s *Service) Quantity(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity(productID)
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items() []domcart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domcart.Line, len(s.cart.Lines))
	copy(out, s.cart.Lines)
	return out
}

// Stored shape: a list of {product snapshot, quantity} under one key, the
// same layout the storefront kept in browser local storage.
type storedLine struct {
	Product  storedProduct `json:"product"`
	Quantity int64         `json:"quantity"`
}

type storedProduct struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	CategoryID  int64   `json:"categoryId"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Stock       int64   `json:"stock"`
	ISBN        string  `json:"isbn,omitempty"`
	Publisher   string  `json:"publisher,omitempty"`
	Pages       int64   `json:"pages,omitempty"`
	Language    string  `json:"language,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

func encodeLines(lines []domcart.Line) ([]byte, error) {
	stored := make([]storedLine, 0, len(lines))
	for _, line := range lines {
		p := line.Product
		stored = append(stored, storedLine{
			Product: storedProduct{
				ID:          p.ID,
				Title:       p.Title,
				Author:      p.Author,
				Price:       p.Price,
				Category:    p.Category,
				CategoryID:  p.CategoryID,
				Image:       p.Image,
				Description: p.Description,
				Stock:       p.Stock,
				ISBN:        p.ISBN,
				Publisher:   p.Publisher,
				Pages:       p.Pages,
				Language:    p.Language,
				Rating:      p.Rating,
			},
			Quantity: line.Quantity,
		})
	}
	return json.Marshal(stored)
}

func decodeLines(data []byte) ([]domcart.Line, error) {
	var stored []storedLine
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	lines := make([]domcart.Line, 0, len(stored))
	for _, sl := range stored {
		sp := sl.Product
		lines = append(lines, domcart.Line{
			Product: domcatalog.Product{
				ID:          sp.ID,
				Title:       sp.Title,
				Author:      sp.Author,
				Price:       sp.Price,
				Category:    sp.Category,
				CategoryID:  sp.CategoryID,
				Image:       sp.Image,
				Description: sp.Description,
				Stock:       sp.Stock,
				ISBN:        sp.ISBN,
				Publisher:   sp.Publisher,
				Pages:       sp.Pages,
				Language:    sp.Language,
				Rating:      sp.Rating,
			},
			Quantity: sl.Quantity,
		})
	}
	return lines, nil
}
