package hero

import (
	"sync"
	"time"
)

type Slide struct {
	Title    string
	Subtitle string
	Image    string
}

func DefaultSlides() []Slide {
	return []Slide{
		{
			Title:    "Descubre Nuevos Mundos",
			Subtitle: "Miles de títulos esperando por ti",
			Image:    "https://images.unsplash.com/photo-1507842217343-583bb7270b66?w=1200&h=500&fit=crop",
		},
		{
			Title:    "Los Mejores Mangas",
			Subtitle: "Encuentra tus series favoritas",
			Image:    "https://images.unsplash.com/photo-1618519764620-7403abdbdfe9?w=1200&h=500&fit=crop",
		},
		{
			Title:    "Clásicos Inmortales",
			Subtitle: "Literatura que trasciende el tiempo",
			Image:    "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=1200&h=500&fit=crop",
		},
	}
}

// Carousel cycles through a fixed slide deck. Start launches the timed
// advance; Stop tears it down when the view goes away.
type Carousel struct {
	mu     sync.Mutex
	slides []Slide
	index  int

	ticker *time.Ticker
	done   chan struct{}
}

func New(slides []Slide) *Carousel {
	if len(slides) == 0 {
		slides = DefaultSlides()
	}
	return &Carousel{slides: slides}
}

func (c *Carousel) Current() (Slide, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slides[c.index], c.index
}

func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(c.slides)
}

func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index - 1 + len(c.slides)) % len(c.slides)
}

// Start advances the slide every interval until Stop is called. Calling
// Start on a running carousel is a no-op.
func (c *Carousel) Start(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(interval)
	c.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				c.Next()
			case <-done:
				return
			}
		}
	}(c.ticker, c.done)
}

func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}
