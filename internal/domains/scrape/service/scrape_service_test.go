package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/config"
)

func newTestService() *scrapeService {
	return NewScrapeService(config.ScraperConfig{
		TimeoutSeconds: 5,
		MaxBodyBytes:   1 << 20,
	}).(*scrapeService)
}

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeReadsOpenGraphTags(t *testing.T) {
	srv := serveHTML(t, `<!DOCTYPE html>
<html><head>
	<title>Fallback title</title>
	<meta property="og:title" content="  LEGO  Saturn V  ">
	<meta property="og:image" content="https://cdn.example.com/saturn-v.jpg">
	<meta property="og:description" content="A 1:110 scale rocket.">
	<meta property="product:price:amount" content="119.99">
</head><body><h1>Unused heading</h1></body></html>`)

	result := newTestService().Scrape(context.Background(), srv.URL)

	require.NotNil(t, result.Name)
	assert.Equal(t, "LEGO Saturn V", *result.Name)
	require.NotNil(t, result.ImageURL)
	assert.Equal(t, "https://cdn.example.com/saturn-v.jpg", *result.ImageURL)
	require.NotNil(t, result.Description)
	assert.Equal(t, "A 1:110 scale rocket.", *result.Description)
	require.NotNil(t, result.Price)
	assert.Equal(t, "119.99", result.Price.String())
}

func TestScrapePrefersJSONLDPrice(t *testing.T) {
	srv := serveHTML(t, `<html><head>
	<script type="application/ld+json">
	{"@type":"Product","name":"Camera","offers":{"@type":"Offer","price":"1299.00","priceCurrency":"EUR"}}
	</script>
	<meta property="product:price:amount" content="9999">
</head><body></body></html>`)

	result := newTestService().Scrape(context.Background(), srv.URL)

	require.NotNil(t, result.Price)
	assert.Equal(t, "1299", result.Price.String())
}

func TestScrapeFallsBackToTitleAndCSSPrice(t *testing.T) {
	srv := serveHTML(t, `<html><head><title>Wool blanket – Nordic Shop</title></head>
<body><span class="product-price">$1,234.56</span></body></html>`)

	result := newTestService().Scrape(context.Background(), srv.URL)

	require.NotNil(t, result.Name)
	assert.Equal(t, "Wool blanket – Nordic Shop", *result.Name)
	require.NotNil(t, result.Price)
	assert.Equal(t, "1234.56", result.Price.String())
	assert.Nil(t, result.ImageURL)
	assert.Nil(t, result.Description)
}

func TestScrapeUnreachableHostReturnsEmptyResult(t *testing.T) {
	// A server that is already closed refuses the connection.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	result := newTestService().Scrape(context.Background(), srv.URL)

	assert.Nil(t, result.Name)
	assert.Nil(t, result.ImageURL)
	assert.Nil(t, result.Price)
	assert.Nil(t, result.Description)
}

func TestScrapeRejectsGarbageURL(t *testing.T) {
	result := newTestService().Scrape(context.Background(), "   ")
	assert.Nil(t, result.Name)
}

func TestNormalizeURLDefaultsScheme(t *testing.T) {
	assert.Equal(t, "https://example.com/item", normalizeURL("example.com/item"))
	assert.Equal(t, "http://example.com", normalizeURL("http://example.com"))
	assert.Equal(t, "", normalizeURL("https://"))
}

func TestParsePriceSeparators(t *testing.T) {
	cases := map[string]string{
		"$1,299.99":      "1299.99",
		"€ 1.299,99":     "1299.99",
		"1.299.000,50 €": "1299000.5",
		"1299,99 €":      "1299.99",
		"USD 49":         "49",
	}
	for in, want := range cases {
		got, err := parsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
}
