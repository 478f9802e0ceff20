package weather

import (
	"context"
	"log"
	"sync"
)

// Cache holds the latest prefetched forecast. The refresh job overwrites it
// wholesale; readers get whatever window was fetched last.
type Cache struct {
	mu   sync.RWMutex
	data map[string]DayForecast
}

func NewCache() *Cache {
	return &Cache{data: map[string]DayForecast{}}
}

// Get returns the cached forecast for an ISO date.
func (c *Cache) Get(date string) (DayForecast, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	df, ok := c.data[date]
	return df, ok
}

// Set replaces the cached window.
func (c *Cache) Set(data map[string]DayForecast) {
	if data == nil {
		data = map[string]DayForecast{}
	}
	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
}

// Refresh fetches a fresh window into the cache. Failures leave the previous
// window in place; weather is decorative and never fatal.
func (c *Cache) Refresh(ctx context.Context, client *Client, lat, lon float64, days int) {
	data, err := client.Forecast(ctx, lat, lon, days)
	if err != nil {
		log.Printf("weather refresh failed: %v", err)
		return
	}
	c.Set(data)
}
