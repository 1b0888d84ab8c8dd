package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/bdpublic/updates-api/metrics"
	"github.com/bdpublic/updates-api/scraper"
	"github.com/bdpublic/updates-api/utils"
	"github.com/gin-gonic/gin"
)

type Scraper interface {
	Run(ctx context.Context) scraper.Result
}

type ScrapeController struct {
	scraper Scraper
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewScrapeController(s Scraper, m *metrics.Metrics) *ScrapeController {
	return &ScrapeController{scraper: s, metrics: m, now: time.Now}
}

// Scrape runs every configured source. Per-source failures are reported in
// results; the request itself still succeeds.
func (sc *ScrapeController) Scrape(c *gin.Context) {
	res := sc.scraper.Run(c.Request.Context())
	sc.metrics.Created(metrics.OriginScrape, res.Inserted)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "স্ক্র্যাপিং সম্পন্ন",
		"results":   res.Results,
		"inserted":  res.Inserted,
		"timestamp": utils.ISOTime(sc.now()),
	})
}
