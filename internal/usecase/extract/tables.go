package extract

import (
	"regexp"

	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
)

// synonymTable maps a canonical value to the literal substrings that
// signal it. Tables are kept in fixed slices so extraction order, and
// therefore output order, is deterministic.
type synonymTable struct {
	canonical string
	keywords  []string
}

var genreTable = []synonymTable{
	{"science fiction", []string{"sci-fi", "scifi", "science fiction", "sf", "space", "futuristic"}},
	{"fantasy", []string{"fantasy", "magic", "wizard", "dragon", "medieval", "quest"}},
	{"mystery", []string{"mystery", "detective", "crime", "thriller", "investigation", "murder"}},
	{"romance", []string{"romance", "love", "romantic", "relationship"}},
	{"horror", []string{"horror", "scary", "terror", "haunted", "ghost"}},
	{"biography", []string{"biography", "autobiography", "memoir", "life story"}},
	{"history", []string{"history", "historical", "war", "ancient"}},
	{"self-help", []string{"self-help", "self help", "personal development", "motivation"}},
	{"children", []string{"children", "kids", "young readers", "picture book"}},
	{"young adult", []string{"ya", "young adult", "teen", "teenage"}},
}

var formatTable = []synonymTable{
	{"Ebook", []string{"ebook", "e-book", "digital", "kindle"}},
	{"Audiobook", []string{"audiobook", "audio book", "audible"}},
	{"Hardcover", []string{"hardcover", "hardback"}},
	{"Paperback", []string{"paperback", "softcover"}},
}

// sortRule maps trigger phrases to a sort key. First matching rule wins;
// at most one sort key is ever produced.
type sortRule struct {
	key      entities.SortKey
	keywords []string
}

var sortTable = []sortRule{
	{entities.PriceAsc, []string{"cheapest", "lowest price"}},
	{entities.PriceDesc, []string{"most expensive", "highest price"}},
	{entities.RatingDesc, []string{"highest rated", "best rated"}},
	{entities.YearDesc, []string{"newest", "most recent"}},
	{entities.YearAsc, []string{"oldest"}},
}

// highlyRatedMin is the fixed business rule for "highly rated" phrasing.
const highlyRatedMin = 4.0

var (
	priceUnderRe   = regexp.MustCompile(`(under|below|less than)\s+\$?(\d+(?:\.\d{2})?)`)
	priceOverRe    = regexp.MustCompile(`(over|above|more than)\s+\$?(\d+(?:\.\d{2})?)`)
	priceBetweenRe = regexp.MustCompile(`between\s+\$?(\d+(?:\.\d{2})?)\s+and\s+\$?(\d+(?:\.\d{2})?)`)

	ratedAboveRe = regexp.MustCompile(`rated?\s+(above|over)\s+(\d(?:\.\d)?)`)
	ratedBelowRe = regexp.MustCompile(`rated?\s+(below|under)\s+(\d(?:\.\d)?)`)

	storeRe = regexp.MustCompile(`(store|bookstore|shop)\s+([a-z])\b`)

	limitTopRe   = regexp.MustCompile(`top\s+(\d+)`)
	limitBooksRe = regexp.MustCompile(`(\d+)\s+books?`)
	limitFirstRe = regexp.MustCompile(`first\s+(\d+)`)
)
