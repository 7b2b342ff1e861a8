package catalog

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/shelfwise/shelfwise/internal/domain/book"
)

// Hash field names. They double as the index attribute names, so the
// filter attribute whitelist maps onto them directly.
const (
	fieldTitle        = "title"
	fieldAuthor       = "author"
	fieldGenre        = "genre"
	fieldPrice        = "price"
	fieldRating       = "rating"
	fieldStoreID      = "store_id"
	fieldStoreName    = "store_name"
	fieldPublisher    = "publisher"
	fieldYear         = "publication_year"
	fieldFormat       = "format_type"
	fieldAvailability = "availability"
	fieldDescription  = "description"
	fieldDocument     = "document"
	fieldVector       = "vector"
)

// returnFields lists everything Search asks RediSearch to return.
// The vector itself is excluded: hits never need it back.
var returnFields = []string{
	fieldTitle, fieldAuthor, fieldGenre, fieldPrice, fieldRating,
	fieldStoreID, fieldStoreName, fieldPublisher, fieldYear,
	fieldFormat, fieldAvailability, fieldDescription,
}

// encodeBook maps a book and its embedding onto hash fields. Optional
// fields (rating, year) are written only when present, so their
// absence round-trips as nil.
func encodeBook(b book.Book, embedding []float32) map[string]string {
	fields := map[string]string{
		fieldTitle:        b.Title,
		fieldAuthor:       b.Author,
		fieldGenre:        b.Genre,
		fieldPrice:        strconv.FormatFloat(b.Price, 'f', -1, 64),
		fieldStoreID:      b.StoreID,
		fieldStoreName:    b.StoreName,
		fieldFormat:       b.Format(),
		fieldAvailability: strconv.FormatBool(b.Availability),
		fieldDescription:  b.Description,
		fieldDocument:     b.Document(),
		fieldVector:       vectorToBytes(embedding),
	}
	if b.Publisher != "" {
		fields[fieldPublisher] = b.Publisher
	}
	if b.Rating != nil {
		fields[fieldRating] = strconv.FormatFloat(*b.Rating, 'f', -1, 64)
	}
	if b.PublicationYear != nil {
		fields[fieldYear] = strconv.Itoa(*b.PublicationYear)
	}
	return fields
}

// decodeBook rebuilds a book from hash fields. Malformed numeric
// fields decode as absent rather than failing the whole hit.
func decodeBook(fields map[string]string) book.Book {
	b := book.Book{
		Title:       fields[fieldTitle],
		Author:      fields[fieldAuthor],
		Genre:       fields[fieldGenre],
		StoreID:     fields[fieldStoreID],
		StoreName:   fields[fieldStoreName],
		Publisher:   fields[fieldPublisher],
		FormatType:  fields[fieldFormat],
		Description: fields[fieldDescription],
	}

	if v, err := strconv.ParseFloat(fields[fieldPrice], 64); err == nil {
		b.Price = v
	}
	if raw, ok := fields[fieldRating]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			b.Rating = &v
		}
	}
	if raw, ok := fields[fieldYear]; ok {
		if v, err := strconv.Atoi(raw); err == nil {
			b.PublicationYear = &v
		}
	}
	b.Availability = fields[fieldAvailability] == "true"

	return b
}

// vectorToBytes serializes []float32 to the little-endian binary
// string RediSearch expects for FLOAT32 vector fields.
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
