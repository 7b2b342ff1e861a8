// Package book defines the canonical catalog item shape shared between
// ingest, retrieval, and response layers.
package book

import "fmt"

// DefaultFormat is used when a book record carries no format type.
const DefaultFormat = "Physical"

// Book is the harmonized metadata of a single catalog item.
// Rating and PublicationYear are pointers: absence means "not known",
// never a zero value.
type Book struct {
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

// Format returns the format type, defaulting to DefaultFormat when unset.
func (b Book) Format() string {
	if b.FormatType == "" {
		return DefaultFormat
	}
	return b.FormatType
}

// Document renders the text that is embedded and indexed for the book.
func (b Book) Document() string {
	doc := fmt.Sprintf("%s by %s. Genre: %s.", b.Title, b.Author, b.Genre)
	if b.Description != "" {
		doc += " " + b.Description
	}
	return doc
}

// Hit is a single retrieved item: a book plus its similarity score.
// Score is a normalized similarity in [0,1] where higher is more relevant.
type Hit struct {
	ID       string  `json:"id"`
	Score    float64 `json:"score"`
	Book     Book    `json:"metadata"`
	Document string  `json:"document,omitempty"`
}
