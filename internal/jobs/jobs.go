// Package jobs runs the background schedules: weather prefetch and the
// daily quote warm-up.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/clients/weather"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/config"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/handlers"
)

// Start schedules the recurring jobs and kicks an immediate weather fetch so
// the first schedule request already has data.
func Start(cfg *config.Config, cache *weather.Cache, client *weather.Client) *cron.Cron {
	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		cache.Refresh(ctx, client, cfg.WeatherLat, cfg.WeatherLon, 14)
	}

	c := cron.New()
	if err := c.AddFunc("@hourly", refresh); err != nil {
		log.Printf("schedule weather refresh: %v", err)
	}
	if err := c.AddFunc("@midnight", handlers.RefreshQuoteOfDay); err != nil {
		log.Printf("schedule quote refresh: %v", err)
	}
	c.Start()

	go refresh()
	return c
}
