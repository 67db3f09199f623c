package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newsgrab/newsgrab"
	newshttp "github.com/newsgrab/newsgrab/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure SitemapService implements newsgrab.SitemapService at compile time.
var _ newsgrab.SitemapService = (*newshttp.SitemapService)(nil)

func urlset(urls ...string) string {
	out := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		out += "<url><loc>" + u + "</loc></url>"
	}
	return out + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("discovers via robots.txt and filters to article-like URLs", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/news-sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/news-sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(urlset(
				srv.URL+"/news/1",
				srv.URL+"/about",
				srv.URL+"/2024/05/01/launch",
			)))
		})

		svc := newshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/front", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/news/1", srv.URL + "/2024/05/01/launch"}, urls)
	})

	t.Run("falls back to /sitemap.xml and follows sitemapindex", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex><sitemap><loc>%s/sitemap-news.xml</loc></sitemap></sitemapindex>`, srv.URL)
		})
		mux.HandleFunc("/sitemap-news.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(urlset(srv.URL+"/article/9", srv.URL+"/article/9", srv.URL+"/contact")))
		})

		svc := newshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/article/9"}, urls)
	})

	t.Run("respects the limit", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(urlset(
				srv.URL+"/news/1", srv.URL+"/news/2", srv.URL+"/news/3",
			)))
		})

		svc := newshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, 2)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("sends browser headers on every request", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		assertHeaders := func(r *http.Request) {
			assert.Equal(t, newshttp.DefaultUserAgent, r.Header.Get("User-Agent"))
			assert.Equal(t, "en-US,en;q=0.9", r.Header.Get("Accept-Language"))
		}
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			assertHeaders(r)
			fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			assertHeaders(r)
			_, _ = w.Write([]byte(urlset(srv.URL + "/news/1")))
		})

		svc := newshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/news/1"}, urls)
	})

	t.Run("no sitemap anywhere yields an empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		svc := newshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, 0)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("invalid base URL is EINVALID", func(t *testing.T) {
		t.Parallel()

		svc := newshttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(context.Background(), "not-a-url", 0)
		assert.Equal(t, newsgrab.EINVALID, newsgrab.ErrorCode(err))
	})
}
