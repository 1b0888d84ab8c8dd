package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bdpublic/updates-api/metrics"
	"github.com/bdpublic/updates-api/models"
	"github.com/bdpublic/updates-api/utils"
	"github.com/bdpublic/updates-api/views"
	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/lgr"
)

const (
	viewsAll   = "all"
	viewsOther = "other"
)

type UpdateStore interface {
	Insert(ctx context.Context, in models.NewUpdate) (uint, error)
	ListAll(ctx context.Context) ([]models.Update, error)
	ListByCategory(ctx context.Context, category string) ([]models.Update, error)
	Stats(ctx context.Context) (models.Stats, error)
}

type UpdateController struct {
	store   UpdateStore
	views   views.Counter
	metrics *metrics.Metrics
	log     lgr.L
	now     func() time.Time
}

func NewUpdateController(store UpdateStore, counter views.Counter, m *metrics.Metrics, l lgr.L) *UpdateController {
	return &UpdateController{store: store, views: counter, metrics: m, log: l, now: time.Now}
}

type listResponse struct {
	Success  bool            `json:"success"`
	Category string          `json:"category,omitempty"`
	Count    int             `json:"count"`
	Updates  []models.Update `json:"updates"`
}

func (uc *UpdateController) ListAll(c *gin.Context) {
	uc.countView(c, viewsAll)
	updates, err := uc.store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Success: true, Count: len(updates), Updates: updates})
}

// ListCategory builds the handler of one category feed.
func (uc *UpdateController) ListCategory(feed CategoryFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		uc.listCategory(c, feed.Category, feed.Label)
	}
}

// ListByTag serves any category named in the path; the tag is its own label.
// Views of tags outside CategoryFeeds share one counter.
func (uc *UpdateController) ListByTag(c *gin.Context) {
	category := c.Param("category")
	uc.listCategory(c, category, category)
}

func viewKey(category string) string {
	for _, feed := range CategoryFeeds {
		if feed.Category == category {
			return category
		}
	}
	return viewsOther
}

func (uc *UpdateController) listCategory(c *gin.Context, category, label string) {
	uc.countView(c, viewKey(category))
	updates, err := uc.store.ListByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{
		Success:  true,
		Category: label,
		Count:    len(updates),
		Updates:  updates,
	})
}

// addRequest holds the raw body fields. Values of any JSON type are accepted;
// strings are kept as-is and everything else is stored as its JSON text.
type addRequest map[string]json.RawMessage

// text returns nil for a field that is absent, null or "".
func (r addRequest) text(field string) *string {
	raw, ok := r[field]
	if !ok {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	return models.StringPtr(s)
}

// Add inserts an update from the request body. Undecodable bodies count as
// missing fields.
func (uc *UpdateController) Add(c *gin.Context) {
	req := addRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		uc.log.Logf("DEBUG add: ignoring body decode error, %v", err)
	}
	title, url := req.text("title"), req.text("url")
	if title == nil || url == nil {
		respondError(c, ErrTitleURLRequired)
		return
	}

	date := utils.BanglaDate(uc.now())
	id, err := uc.store.Insert(c.Request.Context(), models.NewUpdate{
		Title:    *title,
		Summary:  req.text("summary"),
		URL:      *url,
		Source:   req.text("source"),
		Category: req.text("category"),
		Date:     &date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	uc.metrics.Created(metrics.OriginAPI, 1)
	uc.log.Logf("INFO added update %d %q", id, *title)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "আপডেট যোগ করা হয়েছে",
		"id":      id,
	})
}

func (uc *UpdateController) countView(c *gin.Context, feed string) {
	if err := uc.views.Incr(c.Request.Context(), feed); err != nil {
		uc.log.Logf("WARN count view of %s, %v", feed, err)
	}
}
