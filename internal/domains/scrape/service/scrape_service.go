package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"wishbox-backend/internal/config"
	"wishbox-backend/internal/domains/scrape"
	"wishbox-backend/pkg/logger"
)

const (
	maxNameLen        = 300
	maxDescriptionLen = 500

	// Plenty of shops serve a cookie wall or nothing at all to unknown
	// agents, so the client introduces itself as a browser.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// priceSelectors are tried in order after the structured sources.
var priceSelectors = []string{
	`[itemprop="price"]`,
	`meta[itemprop="price"]`,
	".price",
	".product-price",
	`[class*="price"]`,
}

var numberPattern = regexp.MustCompile(`\d[\d\s.,]*`)

// scrapeService implements scrape.Service with goquery over a bounded
// HTTP fetch.
type scrapeService struct {
	client       *http.Client
	maxBodyBytes int64
}

func NewScrapeService(cfg config.ScraperConfig) scrape.Service {
	return &scrapeService{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

func (s *scrapeService) Scrape(ctx context.Context, rawURL string) scrape.Result {
	target := normalizeURL(rawURL)
	if target == "" {
		return scrape.Result{}
	}

	doc, err := s.fetch(ctx, target)
	if err != nil {
		logger.Warn("[SCRAPE] Fetch failed", map[string]interface{}{
			"url": target, "error": err.Error(),
		})
		return scrape.Result{}
	}

	var result scrape.Result
	if name := extractName(doc); name != "" {
		result.Name = &name
	}
	if image := extractImage(doc); image != "" {
		result.ImageURL = &image
	}
	if price, ok := extractPrice(doc); ok {
		result.Price = &price
	}
	if desc := extractDescription(doc); desc != "" {
		result.Description = &desc
	}
	return result
}

func (s *scrapeService) fetch(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, s.maxBodyBytes))
}

// normalizeURL defaults the scheme to https and rejects anything that
// still does not parse as an absolute http(s) URL.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.String()
}

// extractName tries og:title, then <title>, then the first <h1>.
func extractName(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if name := tidy(v, maxNameLen); name != "" {
			return name
		}
	}
	if name := tidy(doc.Find("title").First().Text(), maxNameLen); name != "" {
		return name
	}
	return tidy(doc.Find("h1").First().Text(), maxNameLen)
}

func extractImage(doc *goquery.Document) string {
	for _, sel := range []string{`meta[property="og:image"]`, `meta[property="og:image:url"]`} {
		if v, ok := doc.Find(sel).Attr("content"); ok {
			if img := strings.TrimSpace(v); img != "" {
				return img
			}
		}
	}
	return ""
}

func extractDescription(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		return tidy(v, maxDescriptionLen)
	}
	return ""
}

// extractPrice tries JSON-LD offers, then price metas, then the common
// price CSS selectors.
func extractPrice(doc *goquery.Document) (decimal.Decimal, bool) {
	var found decimal.Decimal
	ok := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var data interface{}
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}
		if raw, hit := findJSONPrice(data); hit {
			if price, err := parsePrice(raw); err == nil {
				found, ok = price, true
				return false
			}
		}
		return true
	})
	if ok {
		return found, true
	}

	for _, sel := range []string{`meta[property="product:price:amount"]`, `meta[property="og:price:amount"]`} {
		if v, exists := doc.Find(sel).Attr("content"); exists {
			if price, err := parsePrice(v); err == nil {
				return price, true
			}
		}
	}

	for _, sel := range priceSelectors {
		node := doc.Find(sel).First()
		text := node.Text()
		if text == "" {
			text, _ = node.Attr("content")
		}
		if price, err := parsePrice(text); err == nil {
			return price, true
		}
	}

	return decimal.Decimal{}, false
}

// findJSONPrice walks arbitrary JSON-LD for the first "price" or
// "lowPrice" value.
func findJSONPrice(data interface{}) (string, bool) {
	switch v := data.(type) {
	case map[string]interface{}:
		for _, key := range []string{"price", "lowPrice"} {
			if raw, exists := v[key]; exists {
				switch p := raw.(type) {
				case string:
					return p, true
				case float64:
					return decimal.NewFromFloat(p).String(), true
				}
			}
		}
		for _, nested := range v {
			if found, ok := findJSONPrice(nested); ok {
				return found, true
			}
		}
	case []interface{}:
		for _, entry := range v {
			if found, ok := findJSONPrice(entry); ok {
				return found, true
			}
		}
	}
	return "", false
}

// parsePrice pulls the first numeric token out of free-form price text
// (currency symbols, thousands separators, decimal commas).
func parsePrice(text string) (decimal.Decimal, error) {
	token := numberPattern.FindString(strings.ReplaceAll(text, " ", " "))
	token = strings.ReplaceAll(token, " ", "")

	// When both separators appear the rightmost one is the decimal
	// point: 1,299.99 and 1.299,99 both parse as 1299.99.
	lastComma := strings.LastIndex(token, ",")
	lastDot := strings.LastIndex(token, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		token = strings.ReplaceAll(token, ".", "")
		token = strings.ReplaceAll(token, ",", ".")
	case lastComma >= 0 && lastDot >= 0:
		token = strings.ReplaceAll(token, ",", "")
	case lastComma >= 0:
		// 1299,99 style: comma is the decimal separator.
		token = strings.ReplaceAll(token, ",", ".")
	}

	return decimal.NewFromString(token)
}

// tidy collapses whitespace and caps the length on a rune boundary.
func tidy(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > max {
		s = strings.TrimSpace(string(runes[:max]))
	}
	return s
}
