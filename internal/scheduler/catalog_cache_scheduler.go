package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
	"github.com/elinacho/lumiskin-backend/pkg/shopify"
)

const refreshLimit = 12

// CatalogCacheScheduler periodically refreshes the featured and best-seller
// caches from the Storefront API so home-page requests never hit Shopify
// directly. A no-op when the client is unconfigured.
type CatalogCacheScheduler struct {
	cron        *cron.Cron
	catalogRepo repository.CatalogRepository
	shopify     *shopify.Client
}

func NewCatalogCacheScheduler(catalogRepo repository.CatalogRepository, shopifyClient *shopify.Client) *CatalogCacheScheduler {
	return &CatalogCacheScheduler{
		cron:        cron.New(),
		catalogRepo: catalogRepo,
		shopify:     shopifyClient,
	}
}

// Start refreshes once immediately, then hourly.
func (s *CatalogCacheScheduler) Start() error {
	if !s.shopify.Configured() {
		logger.Info("Catalog cache scheduler disabled: Shopify client not configured", nil)
		return nil
	}

	go s.refresh()

	_, err := s.cron.AddFunc("0 * * * *", s.refresh)
	if err != nil {
		logger.Error("Failed to add cron job for catalog cache refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog cache scheduler started (hourly)", nil)
	return nil
}

func (s *CatalogCacheScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	featured, err := s.shopify.GetFeaturedProducts(ctx, refreshLimit)
	if err != nil {
		logger.Error("Failed to refresh featured product cache", err)
	} else {
		s.catalogRepo.SetFeatured(featured)
		logger.Info("Featured product cache refreshed", map[string]interface{}{
			"count": len(featured),
		})
	}

	bestSelling, err := s.shopify.GetBestSellingProducts(ctx, refreshLimit)
	if err != nil {
		logger.Error("Failed to refresh best-seller cache", err)
		return
	}
	s.catalogRepo.SetBestSelling(bestSelling)
	logger.Info("Best-seller cache refreshed", map[string]interface{}{
		"count": len(bestSelling),
	})
}

// Stop halts the scheduler.
func (s *CatalogCacheScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Catalog cache scheduler stopped", nil)
}
