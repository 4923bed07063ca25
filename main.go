package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"example.com/bookstore-storefront/internal/config"
	"example.com/bookstore-storefront/internal/domain/catalog"
	"example.com/bookstore-storefront/internal/infra/localstore"
	"example.com/bookstore-storefront/internal/infra/mockdata"
	"example.com/bookstore-storefront/internal/infra/querycache"
	"example.com/bookstore-storefront/internal/infra/remote"
	httpapi "example.com/bookstore-storefront/internal/interface/http"
	cartuc "example.com/bookstore-storefront/internal/usecase/cart"
	cataloguc "example.com/bookstore-storefront/internal/usecase/catalog"
	checkoutuc "example.com/bookstore-storefront/internal/usecase/checkout"
	"example.com/bookstore-storefront/internal/usecase/hero"
)

func main() {
	cfg := config.Load()

	var source catalog.Source
	if cfg.CatalogAPIURL != "" {
		log.Printf("catalog: remote API at %s", cfg.CatalogAPIURL)
		source = remote.NewClient(cfg.CatalogAPIURL, nil)
	} else {
		log.Printf("catalog: offline mode, serving mock data")
		source = mockdata.New()
	}
	cached := querycache.New(source, querycache.Config{
		ListStale:   cfg.ListStale,
		SearchStale: cfg.SearchStale,
		DetailStale: cfg.DetailStale,
	})

	cartSvc := cartuc.NewService(localstore.NewFileStore(cfg.CartFile))
	catalogSvc := cataloguc.NewService(cached)
	checkoutSvc := checkoutuc.NewService(cartSvc)

	carousel := hero.New(nil)
	carousel.Start(cfg.CarouselInterval)
	defer carousel.Stop()

	api := httpapi.NewAPI(httpapi.Dependencies{
		CatalogService:  catalogSvc,
		CartService:     cartSvc,
		CheckoutService: checkoutSvc,
		Carousel:        carousel,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on :%s ...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
