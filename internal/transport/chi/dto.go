package chi

import (
	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query"
	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
)

// Error codes returned in the error envelope.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeNotFound          = "not_found"
	codeNotImplemented    = "not_implemented"
	codeEmbeddingProvider = "embedding_provider_error"
	codeInternalError     = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type queryRequest struct {
	Query string `json:"query"`
}

// queryResponse is the full pipeline envelope for POST /v1/query.
type queryResponse struct {
	Success     bool       `json:"success"`
	ParsedQuery parsedView `json:"parsed_query"`
	Result      any        `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	ElapsedMS   float64    `json:"elapsed_ms"`
}

// parsedView exposes the parsed query for clients and debugging.
type parsedView struct {
	Original   string            `json:"original_query"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   entities.Entities `json:"entities"`
	Keywords   []string          `json:"keywords"`
	Filters    map[string]any    `json:"filters"`
	Stats      query.Stats       `json:"stats"`
}

func parsedToView(p query.Parsed) parsedView {
	return parsedView{
		Original:   p.Original(),
		Intent:     string(p.Intent()),
		Confidence: p.Confidence(),
		Entities:   p.Entities(),
		Keywords:   p.Keywords(),
		Filters:    filtersToView(p.Filters()),
		Stats:      p.Stats(),
	}
}

// filtersToView flattens the filter expression into a JSON-friendly map.
// Match conditions render as strings, set membership as arrays, and
// ranges as {gte, lte} objects with absent sides omitted.
func filtersToView(expr filter.Expression) map[string]any {
	out := make(map[string]any, len(expr.Conditions()))
	for _, c := range expr.Conditions() {
		switch {
		case c.IsMatch():
			out[c.Key()] = c.Match()
		case c.IsIn():
			out[c.Key()] = c.In()
		case c.IsRange():
			r := map[string]any{}
			if gte := c.Range().GTE(); gte != nil {
				r["gte"] = *gte
			}
			if lte := c.Range().LTE(); lte != nil {
				r["lte"] = *lte
			}
			out[c.Key()] = r
		}
	}
	return out
}

// bookPayload is the wire shape of a catalog book for ingestion.
type bookPayload struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Genre           string   `json:"genre"`
	Price           float64  `json:"price"`
	Rating          *float64 `json:"rating,omitempty"`
	StoreID         string   `json:"store_id"`
	StoreName       string   `json:"store_name"`
	Publisher       string   `json:"publisher,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	FormatType      string   `json:"format_type,omitempty"`
	Availability    bool     `json:"availability"`
	Description     string   `json:"description,omitempty"`
}

func (p bookPayload) toBook() book.Book {
	return book.Book{
		Title:           p.Title,
		Author:          p.Author,
		Genre:           p.Genre,
		Price:           p.Price,
		Rating:          p.Rating,
		StoreID:         p.StoreID,
		StoreName:       p.StoreName,
		Publisher:       p.Publisher,
		PublicationYear: p.PublicationYear,
		FormatType:      p.FormatType,
		Availability:    p.Availability,
		Description:     p.Description,
	}
}

type ingestRequest struct {
	Books []bookPayload `json:"books"`
}

type ingestResponse struct {
	Indexed int      `json:"indexed"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
