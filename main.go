package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"marketview/config"
	"marketview/logger"
	"marketview/models"
	"marketview/poller"
	"marketview/reader/bitpin"
	"marketview/view"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yml", "Path to configuration file")
	marketID := flag.Int("market", 0, "Market to open the detail view for (0 = first tradable market)")
	percent := flag.Float64("percent", 50, "Volume-target percent for the detail calculator")

	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service":     cfg.Marketview.Name,
		"version":     cfg.Marketview.Version,
		"environment": config.AppEnvironment(),
	}).Info("starting marketview")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, 30*time.Second)
	}

	if cfg.Metrics.CloudWatch {
		logger.InitCloudWatch(cfg.Metrics.Region, cfg.Metrics.Namespace, cfg.Logging.DashboardName)
	}

	client := bitpin.NewClient(cfg)
	listing := view.NewListingView(cfg)

	page, err := client.Markets(ctx)
	if err != nil {
		log.WithError(err).Error("failed to fetch initial market list")
		os.Exit(1)
	}
	listing.SetMarkets(page)
	logListing(log, listing)

	detailID := *marketID
	if detailID == 0 {
		visible := listing.Page().Markets.Visible
		if len(visible) == 0 {
			log.Error("no tradable markets available for the detail view")
			os.Exit(1)
		}
		detailID = visible[0].ID
	}

	detail := view.NewDetailView(detailID)
	detail.SetPercent(*percent)

	interval := time.Duration(cfg.Source.Bitpin.Book.IntervalMs) * time.Millisecond
	sched := poller.NewScheduler(client, interval)
	sched.Start(ctx, poller.Key{MarketID: detailID, Feed: detail.Feed()}, func(snap models.BookSnapshot) {
		detail.Apply(snap)
		totals := detail.Totals().Fixed()
		log.WithComponent("detail_view").WithFields(logger.Fields{
			"market_id":          snap.MarketID,
			"feed":               snap.Feed.String(),
			"feed_title":         snap.Feed.Title(),
			"rows":               len(snap.Orders),
			"weighted_avg_price": totals.WeightedAvgPrice,
			"total_remain":       totals.TotalRemain,
			"total_value":        totals.TotalValue,
			"target_remain":      totals.TargetRemain,
			"total_payment":      totals.TotalPayment,
		}).Info("detail snapshot applied")
	})

	// Slow refresh keeps the listing live while the detail feed polls fast.
	go func() {
		ticker := time.NewTicker(cfg.Source.Bitpin.Markets.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				page, err := client.Markets(ctx)
				if err != nil {
					log.WithComponent("listing_view").WithError(err).Warn("market list refresh failed; keeping previous snapshot")
					continue
				}
				listing.SetMarkets(page)
				logListing(log, listing)
			}
		}
	}()

	log.Info("all components started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.WithFields(logger.Fields{"signal": sig.String()}).Info("shutdown signal received")

	log.Info("starting graceful shutdown")
	cancel()

	done := make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("graceful shutdown completed")
	case <-time.After(30 * time.Second):
		log.Warn("graceful shutdown timeout exceeded")
	}

	log.Info("marketview stopped")
}

func logListing(log *logger.Log, listing *view.ListingView) {
	page := listing.Page()
	log.WithComponent("listing_view").WithFields(logger.Fields{
		"quote":        page.Quote,
		"page":         page.Page,
		"total_pages":  page.Markets.TotalPages,
		"visible":      len(page.Markets.Visible),
		"page_numbers": page.Markets.PageNumbers,
	}).Info("listing refreshed")
}
