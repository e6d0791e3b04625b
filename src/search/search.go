// Package search gathers evidence for a claim from DuckDuckGo's HTML
// endpoint. Search is best-effort: any transport or parse failure yields
// an empty result list, never an error, so the pipeline can distinguish
// "no evidence" from a hard failure.
package search

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const (
	defaultEndpoint = "https://html.duckduckgo.com/html/"
	// Indonesian regional results, matching the audience of the claims.
	regionID = "id-id"
	// Fixed query suffix steering results toward news verification pages.
	querySuffix = "berita validasi"

	maxResults = 6
)

// Result is one evidence item. Fields are never absent: anything the
// provider omits is an empty string.
type Result struct {
	Title   string
	Snippet string
	URL     string
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	sanitizer  *bluemonday.Policy
}

func NewClient() *Client {
	return &Client{
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// NewClientWithEndpoint points the client at an alternate HTML endpoint.
func NewClientWithEndpoint(endpoint string) *Client {
	c := NewClient()
	c.endpoint = endpoint
	return c
}

// Gather runs one search for the claim and returns up to maxResults
// evidence items in provider order.
func (c *Client) Gather(claim string) []Result {
	query := strings.TrimSpace(claim) + " " + querySuffix

	form := url.Values{}
	form.Set("q", query)
	form.Set("kl", regionID)

	req, err := http.NewRequest("POST", c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("search: build request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; cekfakta-bot)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("search: request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("search: unexpected status %d", resp.StatusCode)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("search: parse response: %v", err)
		return nil
	}

	var results []Result
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find(".result__a").First()
		title := strings.TrimSpace(anchor.Text())

		link := ""
		if href, ok := anchor.Attr("href"); ok {
			link = resolveRedirect(href)
		}

		snippetHTML, err := sel.Find(".result__snippet").First().Html()
		snippet := ""
		if err == nil {
			snippet = strings.TrimSpace(c.sanitizer.Sanitize(snippetHTML))
		}

		if title == "" && snippet == "" && link == "" {
			return true
		}

		results = append(results, Result{Title: title, Snippet: snippet, URL: link})
		return len(results) < maxResults
	})

	return results
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the
// target URL. Unrecognized hrefs pass through untouched.
func resolveRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		if decoded, err := url.QueryUnescape(target); err == nil {
			return decoded
		}
		return target
	}
	if parsed.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}

// BuildQuery is exposed for logging and tests.
func BuildQuery(claim string) string {
	return fmt.Sprintf("%s %s", strings.TrimSpace(claim), querySuffix)
}
