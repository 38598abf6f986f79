package scrape

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ========================================
// SCRAPE DTOs
// ========================================

type ScrapeRequest struct {
	URL string `json:"url"`
}

func (r ScrapeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, validation.Length(1, 2000)),
	)
}

// Result is whatever could be extracted from the page. All fields are
// optional: an unreachable or unparseable page yields an empty result,
// never an error, because scraping only prefills the add-item form.
type Result struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	Description *string          `json:"description,omitempty"`
}
