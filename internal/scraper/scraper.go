// Package scraper populates the phone catalog from GSMArena listing and
// spec pages. It is an offline data-loading job, not part of the live
// request path.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/config"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

const listingDelay = time.Second

// PhoneLink is one phone found on a listing page.
type PhoneLink struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Scraper fetches and parses GSMArena pages.
type Scraper struct {
	baseURL    string
	listingURL string
	userAgent  string
	delay      time.Duration
	client     *http.Client
	log        *zap.Logger
}

// New creates a Scraper from configuration.
func New(cfg *config.Config, log *zap.Logger) *Scraper {
	return &Scraper{
		baseURL:    cfg.ScrapeBaseURL,
		listingURL: cfg.ScrapeListingURL,
		userAgent:  cfg.ScrapeUserAgent,
		delay:      cfg.ScrapeDelay,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// ListPhones walks the listing pages and collects every phone link,
// stopping at the first page with no phones.
func (s *Scraper) ListPhones(ctx context.Context) ([]PhoneLink, error) {
	var all []PhoneLink
	for page := 1; ; page++ {
		doc, err := s.fetch(ctx, s.pageURL(page))
		if err != nil {
			if page == 1 {
				return nil, err
			}
			s.log.Warn("listing fetch failed, stopping pagination",
				zap.Int("page", page), zap.Error(err))
			break
		}

		links := s.extractLinks(doc)
		if len(links) == 0 {
			s.log.Debug("empty listing page, stopping", zap.Int("page", page))
			break
		}
		all = append(all, links...)
		s.log.Info("listing page scraped",
			zap.Int("page", page), zap.Int("phones", len(links)))

		if err := sleep(ctx, listingDelay); err != nil {
			return all, err
		}
	}
	s.log.Info("listing complete", zap.Int("total", len(all)))
	return all, nil
}

// ScrapeAll scrapes details for every listed phone, up to limit when
// limit > 0, with a polite delay between requests.
func (s *Scraper) ScrapeAll(ctx context.Context) ([]store.PhoneRecord, error) {
	return s.ScrapeLimit(ctx, 0)
}

// ScrapeLimit is ScrapeAll with an upper bound on phones scraped.
func (s *Scraper) ScrapeLimit(ctx context.Context, limit int) ([]store.PhoneRecord, error) {
	links, err := s.ListPhones(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(links) > limit {
		links = links[:limit]
	}

	phones := make([]store.PhoneRecord, 0, len(links))
	for i, link := range links {
		s.log.Info("scraping phone",
			zap.Int("index", i+1), zap.Int("total", len(links)),
			zap.String("name", link.Name))

		rec, err := s.ScrapeDetails(ctx, link.URL)
		if err != nil {
			s.log.Warn("phone page failed",
				zap.String("url", link.URL), zap.Error(err))
		} else {
			phones = append(phones, *rec)
		}

		if err := sleep(ctx, s.delay); err != nil {
			return phones, err
		}
	}
	return phones, nil
}

func (s *Scraper) pageURL(page int) string {
	if page == 1 {
		return s.listingURL
	}
	return fmt.Sprintf("%ssamsung-phones-f-9-0-p%d.php", s.baseURL, page)
}

func (s *Scraper) extractLinks(doc *goquery.Document) []PhoneLink {
	var links []PhoneLink
	doc.Find("div.makers a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		name := a.Find("strong").Text()
		if !ok || name == "" {
			return
		}
		links = append(links, PhoneLink{
			URL:  s.resolveURL(href),
			Name: trim(name),
		})
	})
	return links
}

func (s *Scraper) resolveURL(href string) string {
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
