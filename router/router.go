package router

import (
	"net/http"
	"time"

	"github.com/bdpublic/updates-api/controllers"
	"github.com/bdpublic/updates-api/metrics"
	"github.com/bdpublic/updates-api/middlewares"
	"github.com/bdpublic/updates-api/scraper"
	"github.com/bdpublic/updates-api/views"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/lgr"
)

// Deps are the long-lived services the handlers work with. Store must be
// initialized before the router serves traffic.
type Deps struct {
	Store   controllers.UpdateStore
	Views   views.Counter
	Scraper *scraper.Scraper
	Metrics *metrics.Metrics
	Logger  lgr.L
	Server  string
	Author  string
}

func InitRouter(d Deps) *gin.Engine {
	if d.Views == nil {
		d.Views = views.Nop{}
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Logger == nil {
		d.Logger = lgr.NoOp
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.Logger(d.Logger),
		middlewares.Metrics(d.Metrics),
	)

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middlewares.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	updates := controllers.NewUpdateController(d.Store, d.Views, d.Metrics, d.Logger)

	r.GET("/", controllers.Index(d.Author))
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health(d.Server, time.Now))

		api.GET("/all", updates.ListAll)
		for _, feed := range controllers.CategoryFeeds {
			api.GET(feed.Path, updates.ListCategory(feed))
		}
		api.GET("/updates/:category", updates.ListByTag)
		api.POST("/add", updates.Add)

		sourcesCount := 0
		if d.Scraper != nil {
			sourcesCount = len(d.Scraper.Sources())
			api.GET("/scrape", controllers.NewScrapeController(d.Scraper, d.Metrics).Scrape)
		}
		api.GET("/stats", updates.Stats(sourcesCount))
	}

	return r
}
