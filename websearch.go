package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CompanySearcher fetches live context about a target company. An empty
// result and a transport error are treated the same way by callers: both
// trigger the LLM-knowledge fallback.
type CompanySearcher interface {
	GetCompanyInfo(ctx context.Context, company string) (string, error)
}

// maxSearchResults caps how many search hits go into the company context.
const maxSearchResults = 3

// DDGSearcher queries the DuckDuckGo HTML endpoint. The HTML backend is
// slower than the JSON API but far less rate limited.
type DDGSearcher struct {
	Client  *http.Client
	BaseURL string
}

func NewDDGSearcher() *DDGSearcher {
	return &DDGSearcher{
		Client:  &http.Client{Timeout: 15 * time.Second},
		BaseURL: "https://html.duckduckgo.com/html/",
	}
}

type searchResult struct {
	Title   string
	Snippet string
	Link    string
}

func (s *DDGSearcher) GetCompanyInfo(ctx context.Context, company string) (string, error) {
	if strings.TrimSpace(company) == "" {
		return "", nil
	}

	query := company + " company mission values tech stack recent news"
	form := url.Values{"q": {query}, "kl": {"wt-wt"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search status %d", resp.StatusCode)
	}

	results, err := parseSearchHTML(resp.Body)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		log.Printf("no web results for %q, falling back to model knowledge", company)
		return "", nil
	}
	return FormatCompanyContext(results), nil
}

// parseSearchHTML extracts (title, snippet, link) triples from the DDG HTML
// lite response.
func parseSearchHTML(body io.Reader) ([]searchResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	var results []searchResult
	doc.Find(".result, .web-result").Each(func(i int, sel *goquery.Selection) {
		if len(results) >= maxSearchResults {
			return
		}
		link := sel.Find("a.result__a, .result__title a").First()
		title := strings.TrimSpace(link.Text())
		href, exists := link.Attr("href")
		if !exists || title == "" {
			return
		}
		href = unwrapRedirect(href)
		if href == "" {
			return
		}
		snippet := strings.TrimSpace(sel.Find(".result__snippet, .result__body").First().Text())
		results = append(results, searchResult{Title: title, Snippet: snippet, Link: href})
	})
	return results, nil
}

// unwrapRedirect extracts the target URL from DDG redirect wrappers
// (//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com&rut=...).
func unwrapRedirect(href string) string {
	if strings.Contains(href, "duckduckgo.com/l/") || strings.Contains(href, "uddg=") {
		if u, err := url.Parse(href); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				return uddg
			}
		}
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return ""
}

// FormatCompanyContext renders search hits as the markdown context block the
// generators consume.
func FormatCompanyContext(results []searchResult) string {
	var b strings.Builder
	b.WriteString("### Company Intelligence (Live Web Data):\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- **%s**: %s ([Source](%s))\n", r.Title, r.Snippet, r.Link)
	}
	return b.String()
}
