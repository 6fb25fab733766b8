// Package discovery scrapes the source page for candidate PDF documents.
// The rest of the pipeline treats it as a black box that yields name/URL
// descriptors.
package discovery

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/caching"
	"github.com/dtnitsch/acs-monitor/pkg/fetcher"
)

// Discoverer finds PDF links on the configured source page and filters them
// down to the documents worth tracking.
type Discoverer struct {
	fetcher *fetcher.Fetcher
	cache   *caching.PageCache
	source  models.SourceConfig
	logger  *slog.Logger
}

// New creates a Discoverer. The cache may be nil to always refetch the page.
func New(f *fetcher.Fetcher, cache *caching.PageCache, source models.SourceConfig, logger *slog.Logger) *Discoverer {
	return &Discoverer{fetcher: f, cache: cache, source: source, logger: logger}
}

// Discover returns the candidate documents on the source page plus metadata
// about the page itself. Candidates are de-duplicated by URL in first-seen
// order.
func (d *Discoverer) Discover() ([]models.Candidate, *models.SourceInfo, error) {
	html, err := d.pageHTML()
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse discovery page: %w", err)
	}

	base, err := url.Parse(d.source.BaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base URL: %w", err)
	}

	var candidates []models.Candidate
	seen := make(map[string]struct{})

	doc.Find(`a[href$=".pdf"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		absolute := href
		if !strings.HasPrefix(href, "http") {
			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			absolute = base.ResolveReference(ref).String()
		}

		name := strings.TrimSpace(sel.Text())
		if name == "" {
			name = strings.TrimSuffix(path.Base(absolute), path.Ext(absolute))
		}

		if !d.matchesKeywords(name, absolute) {
			return
		}
		if _, dup := seen[absolute]; dup {
			return
		}
		seen[absolute] = struct{}{}

		candidates = append(candidates, models.Candidate{Name: name, URL: absolute})
	})

	info := d.sourceInfo(html)
	d.logger.Info("discovered candidate documents", "count", len(candidates), "page", d.source.PageURL)
	return candidates, info, nil
}

// pageHTML returns the source page body, from cache when fresh.
func (d *Discoverer) pageHTML() ([]byte, error) {
	if d.cache != nil {
		if data, ok := d.cache.Get(d.source.PageURL); ok {
			d.logger.Info("discovery page served from cache", "page", d.source.PageURL)
			return data, nil
		}
	}

	data, err := d.fetcher.FetchBody(d.source.PageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discovery page: %w", err)
	}

	if d.cache != nil {
		if err := d.cache.Set(d.source.PageURL, data); err != nil {
			d.logger.Error("failed to cache discovery page", "error", err)
		}
	}
	return data, nil
}

// matchesKeywords keeps a candidate when any configured keyword appears in
// its name or URL, case-insensitive. An empty keyword list keeps everything.
func (d *Discoverer) matchesKeywords(name, href string) bool {
	if len(d.source.Keywords) == 0 {
		return true
	}
	lowerName := strings.ToLower(name)
	lowerHref := strings.ToLower(href)
	for _, kw := range d.source.Keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(lowerName, kw) || strings.Contains(lowerHref, kw) {
			return true
		}
	}
	return false
}

// sourceInfo extracts title/excerpt metadata from the page for the run
// summary. Failures here are not worth aborting a run over.
func (d *Discoverer) sourceInfo(html []byte) *models.SourceInfo {
	pageURL, err := url.Parse(d.source.PageURL)
	if err != nil {
		return nil
	}

	article, err := readability.FromReader(bytes.NewReader(html), pageURL)
	if err != nil {
		d.logger.Warn("failed to extract source page metadata", "error", err)
		return nil
	}

	return &models.SourceInfo{
		Title:    article.Title,
		Excerpt:  article.Excerpt,
		SiteName: article.SiteName,
	}
}
