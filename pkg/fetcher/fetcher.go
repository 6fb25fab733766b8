package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// HeaderProbe is the header snapshot from a metadata-only request. Fields are
// pointers because a server may omit any of them, and absent vs present is a
// meaningful difference for change detection.
type HeaderProbe struct {
	StatusCode    int
	LastModified  *string
	ETag          *string
	ContentLength *int64
}

// Fetcher performs header probes and body fetches against document URLs with
// a fixed client identity. Some servers reject default Go user agents, so the
// identity string is mandatory.
type Fetcher struct {
	probeClient *http.Client
	fetchClient *http.Client
	userAgent   string
}

// NewFetcher creates a Fetcher. Probes get a shorter timeout than full body
// fetches.
func NewFetcher(userAgent string, probeTimeout, fetchTimeout time.Duration) *Fetcher {
	return &Fetcher{
		probeClient: &http.Client{Timeout: probeTimeout},
		fetchClient: &http.Client{Timeout: fetchTimeout},
		userAgent:   userAgent,
	}
}

func (f *Fetcher) newRequest(method, url string) (*http.Request, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	return req, nil
}

// ProbeHeaders issues a HEAD request and returns the change-signal headers.
// Any transport error or non-2xx status is returned as an error; the caller
// decides what a failed probe means for the tracked record.
func (f *Fetcher) ProbeHeaders(url string) (*HeaderProbe, error) {
	req, err := f.newRequest(http.MethodHead, url)
	if err != nil {
		return nil, err
	}

	resp, err := f.probeClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to probe headers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("probe failed with status %d for %s", resp.StatusCode, url)
	}

	probe := &HeaderProbe{StatusCode: resp.StatusCode}
	if v := resp.Header.Get("Last-Modified"); v != "" {
		probe.LastModified = &v
	}
	if v := resp.Header.Get("ETag"); v != "" {
		probe.ETag = &v
	}
	if v := resp.Header.Get("Content-Length"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			probe.ContentLength = &n
		}
	}
	return probe, nil
}

// FetchBody issues a GET request and returns the full body.
func (f *Fetcher) FetchBody(url string) ([]byte, error) {
	req, err := f.newRequest(http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	resp, err := f.fetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch failed with status %d for %s", resp.StatusCode, url)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return bodyBytes, nil
}

// GetHtml fetches a page and parses it for discovery scraping.
func (f *Fetcher) GetHtml(url string) (*goquery.Document, error) {
	bodyBytes, err := f.FetchBody(url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
