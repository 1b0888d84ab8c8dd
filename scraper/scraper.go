// Package scraper pulls notices from government sites and feeds into the
// update store.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bdpublic/updates-api/models"
	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"
)

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxBodyBytes = 2 << 20
	summaryLen   = 280
)

// Store is the part of the update store the scraper writes through.
type Store interface {
	ExistsURL(ctx context.Context, url string) (bool, error)
	Insert(ctx context.Context, in models.NewUpdate) (uint, error)
}

type Notice struct {
	Title   string
	Link    string
	Summary string
}

type Result struct {
	// Results maps source key to "success" or "error: <reason>".
	Results  map[string]string
	Inserted int
}

type Options struct {
	Timeout  time.Duration
	MaxItems int
	Logger   lgr.L
}

type Scraper struct {
	client   *http.Client
	store    Store
	sources  []models.Source
	maxItems int
	log      lgr.L
	now      func() time.Time
}

func New(store Store, sources []models.Source, opts Options) *Scraper {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = 10
	}
	if opts.Logger == nil {
		opts.Logger = lgr.NoOp
	}
	return &Scraper{
		client:   &http.Client{Timeout: opts.Timeout},
		store:    store,
		sources:  sources,
		maxItems: opts.MaxItems,
		log:      opts.Logger,
		now:      time.Now,
	}
}

func (s *Scraper) Sources() []models.Source {
	return s.sources
}

// Run scrapes every source in order. A failing source is recorded in the
// result and does not stop the others.
func (s *Scraper) Run(ctx context.Context) Result {
	res := Result{Results: make(map[string]string, len(s.sources))}
	for _, src := range s.sources {
		s.log.Logf("INFO scraping %s (%s)", src.Name, src.URL)
		n, err := s.scrapeSource(ctx, src)
		res.Inserted += n
		if err != nil {
			s.log.Logf("WARN scrape %s failed, %v", src.Key, err)
			res.Results[src.Key] = "error: " + err.Error()
			continue
		}
		s.log.Logf("INFO scraped %d new notices from %s", n, src.Name)
		res.Results[src.Key] = "success"
	}
	return res
}

func (s *Scraper) scrapeSource(ctx context.Context, src models.Source) (int, error) {
	base, err := url.Parse(src.URL)
	if err != nil {
		return 0, fmt.Errorf("parse url: %w", err)
	}
	data, err := s.fetch(ctx, src.URL)
	if err != nil {
		return 0, err
	}

	var notices []Notice
	switch src.Kind {
	case models.SourceKindFeed:
		notices, err = parseFeed(data)
	case models.SourceKindHTML, "":
		notices, err = parseHTML(data, base, src.Selector)
	default:
		return 0, fmt.Errorf("unknown source kind %q", src.Kind)
	}
	if err != nil {
		return 0, err
	}
	if len(notices) > s.maxItems {
		notices = notices[:s.maxItems]
	}

	date := s.now().Format("2006-01-02")
	inserted := 0
	for _, n := range notices {
		exists, err := s.store.ExistsURL(ctx, n.Link)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}
		_, err = s.store.Insert(ctx, models.NewUpdate{
			Title:    n.Title,
			Summary:  models.StringPtr(n.Summary),
			URL:      n.Link,
			Source:   models.StringPtr(src.Name),
			Category: models.StringPtr(src.Category),
			Date:     &date,
		})
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

func parseHTML(data []byte, base *url.URL, selector string) ([]Notice, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("html source without selector")
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	seen := map[string]bool{}
	var notices []Notice
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		title := collapseSpace(sel.Text())
		href, ok := sel.Attr("href")
		if !ok || title == "" {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		link := base.ResolveReference(ref).String()
		if seen[link] {
			return
		}
		seen[link] = true
		summary := ""
		if t, ok := sel.Attr("title"); ok {
			summary = collapseSpace(t)
		}
		notices = append(notices, Notice{Title: title, Link: link, Summary: summary})
	})
	return notices, nil
}

func parseFeed(data []byte) ([]Notice, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	notices := make([]Notice, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		notices = append(notices, Notice{
			Title:   title,
			Link:    link,
			Summary: truncate(sanitize(desc), summaryLen),
		})
	}
	return notices, nil
}

var htmlTagRegex = regexp.MustCompile("<[^>]*>")

func sanitize(text string) string {
	return collapseSpace(htmlTagRegex.ReplaceAllString(text, ""))
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncate cuts on rune boundaries; Bangla text is multi-byte.
func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
