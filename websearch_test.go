package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ddgResultsPage = `
<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fabout&amp;rut=abc">Example Corp - About</a>
  <div class="result__snippet">Example builds developer tools.</div>
</div>
<div class="result">
  <a class="result__a" href="https://news.example.com/funding">Example raises Series B</a>
  <div class="result__snippet">The company announced new funding.</div>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/careers">Careers at Example</a>
  <div class="result__snippet">Go, Postgres, Kubernetes.</div>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/extra">A fourth result</a>
  <div class="result__snippet">Should be dropped.</div>
</div>
</body></html>`

func TestParseSearchHTML(t *testing.T) {
	results, err := parseSearchHTML(strings.NewReader(ddgResultsPage))
	require.NoError(t, err)
	require.Len(t, results, maxSearchResults)

	assert.Equal(t, "Example Corp - About", results[0].Title)
	assert.Equal(t, "https://example.com/about", results[0].Link)
	assert.Equal(t, "Example builds developer tools.", results[0].Snippet)
	assert.Equal(t, "https://news.example.com/funding", results[1].Link)
}

func TestParseSearchHTMLNoResults(t *testing.T) {
	results, err := parseSearchHTML(strings.NewReader("<html><body><p>no hits</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUnwrapRedirect(t *testing.T) {
	assert.Equal(t, "https://example.com/x",
		unwrapRedirect("//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fx&rut=zz"))
	assert.Equal(t, "https://plain.example.com", unwrapRedirect("https://plain.example.com"))
	assert.Equal(t, "", unwrapRedirect("/relative/path"))
}

func TestFormatCompanyContext(t *testing.T) {
	out := FormatCompanyContext([]searchResult{
		{Title: "T1", Snippet: "S1", Link: "https://a"},
		{Title: "T2", Snippet: "S2", Link: "https://b"},
	})
	assert.Contains(t, out, "Company Intelligence")
	assert.Contains(t, out, "**T1**: S1 ([Source](https://a))")
	assert.Contains(t, out, "**T2**")
}

func TestGetCompanyInfoLiveResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.Form.Get("q"), "Example Corp")
		assert.Contains(t, r.Form.Get("q"), "mission values tech stack")
		w.Write([]byte(ddgResultsPage))
	}))
	defer srv.Close()

	s := &DDGSearcher{Client: srv.Client(), BaseURL: srv.URL}
	out, err := s.GetCompanyInfo(context.Background(), "Example Corp")
	require.NoError(t, err)
	assert.Contains(t, out, "Example Corp - About")
}

func TestGetCompanyInfoEmptyCompany(t *testing.T) {
	s := NewDDGSearcher()
	out, err := s.GetCompanyInfo(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetCompanyInfoNoResultsFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body></body></html>"))
	}))
	defer srv.Close()

	s := &DDGSearcher{Client: srv.Client(), BaseURL: srv.URL}
	out, err := s.GetCompanyInfo(context.Background(), "Ghost Inc")
	require.NoError(t, err)
	assert.Empty(t, out, "empty search results must read as no context, not an error")
}

func TestGetCompanyInfoServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := &DDGSearcher{Client: srv.Client(), BaseURL: srv.URL}
	_, err := s.GetCompanyInfo(context.Background(), "Example Corp")
	assert.Error(t, err)
}
