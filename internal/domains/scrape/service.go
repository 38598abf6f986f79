package scrape

import "context"

// Service defines the metadata extraction contract.
type Service interface {
	// Scrape fetches the URL and extracts best-effort product metadata.
	// It never returns an error for fetch or parse failures; the result
	// is simply emptier. The request is bounded by the client timeout
	// and by ctx.
	Scrape(ctx context.Context, rawURL string) Result
}
