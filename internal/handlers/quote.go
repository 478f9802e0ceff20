package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// DefaultQuote is the last-resort banner text when there are no stored
// quotes and the generative fallback fails.
const DefaultQuote = "Show up. The rest follows."

var quoteMu sync.Mutex
var quoteOfDay string
var quoteDay string

func invalidateQuoteOfDay() {
	quoteMu.Lock()
	quoteOfDay = ""
	quoteDay = ""
	quoteMu.Unlock()
}

// QuoteOfDay serves one rotating motivational line per day. Stored quotes
// rotate by day number; with none stored the generative service is asked
// once per day, and any failure falls back to the hardcoded default.
func QuoteOfDay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"text": quoteForToday(r.Context())})
}

func quoteForToday(ctx context.Context) string {
	today := time.Now().In(tz).Format("2006-01-02")

	quoteMu.Lock()
	if quoteDay == today && quoteOfDay != "" {
		q := quoteOfDay
		quoteMu.Unlock()
		return q
	}
	quoteMu.Unlock()

	q := pickQuote(ctx, today)

	quoteMu.Lock()
	quoteOfDay, quoteDay = q, today
	quoteMu.Unlock()
	return q
}

func pickQuote(ctx context.Context, today string) string {
	var quotes []models.Quote
	if err := db.Conn().Order("id asc").Find(&quotes).Error; err == nil && len(quotes) > 0 {
		day, _ := time.Parse("2006-01-02", today)
		idx := (day.Year()*366 + day.YearDay()) % len(quotes)
		return quotes[idx].Text
	}
	if aiClient.Configured() {
		if q, err := aiClient.MotivationalQuote(ctx); err == nil && q != "" {
			return q
		}
	}
	return DefaultQuote
}

// RefreshQuoteOfDay warms the daily quote, called by the scheduler at
// midnight so the first trainee of the day gets a fast response.
func RefreshQuoteOfDay() {
	invalidateQuoteOfDay()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = quoteForToday(ctx)
}
