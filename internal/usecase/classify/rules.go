package classify

import (
	"regexp"

	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
)

// rule holds the lexical evidence for one intent: literal keyword
// substrings and regular-expression patterns.
type rule struct {
	intent   intent.Intent
	keywords []string
	patterns []*regexp.Regexp
}

// rules is declared in fixed priority order; classification ties break
// toward the earlier entry. Tables are data, not control flow, so they
// can be extended without touching the scoring loop.
var rules = []rule{
	{
		intent:   intent.Search,
		keywords: []string{"find", "search", "looking for", "show me", "get", "want", "need"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(find|search|looking for|show me|get me)\s+.*(books?|novels?)`),
			regexp.MustCompile(`(want|need)\s+(a|an|some)\s+(book|novel)`),
			regexp.MustCompile(`books?\s+(about|on|related to)`),
		},
	},
	{
		intent:   intent.Recommendation,
		keywords: []string{"recommend", "suggest", "similar", "like", "based on"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(recommend|suggest)\s+(books?|something)`),
			regexp.MustCompile(`(similar|like)\s+`),
			regexp.MustCompile(`based on`),
			regexp.MustCompile(`what should i read`),
			regexp.MustCompile(`good books?\s+(for|about)`),
		},
	},
	{
		intent:   intent.Comparison,
		keywords: []string{"compare", "cheaper", "better", "versus", "vs", "difference", "which"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(compare|comparison)\s+`),
			regexp.MustCompile(`(cheaper|better|best)\s+(store|price)`),
			regexp.MustCompile(`(which|what)\s+(store|bookstore)\s+(is|has)`),
			regexp.MustCompile(`(versus|vs\.?)\s+`),
			regexp.MustCompile(`difference between`),
		},
	},
	{
		intent:   intent.Analytics,
		keywords: []string{"most popular", "average", "statistics", "how many", "total", "count"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(most|least)\s+(popular|expensive|rated)`),
			regexp.MustCompile(`(average|mean)\s+(price|rating)`),
			regexp.MustCompile(`(how many|total|count)`),
			regexp.MustCompile(`statistics\s+(about|on|for)`),
			regexp.MustCompile(`(top|best)\s+\d+`),
		},
	},
	{
		intent:   intent.Filter,
		keywords: []string{"under", "over", "between", "more than", "less than", "only"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(under|below|less than)\s+\$?\d+`),
			regexp.MustCompile(`(over|above|more than)\s+\$?\d+`),
			regexp.MustCompile(`between\s+\$?\d+\s+and\s+\$?\d+`),
			regexp.MustCompile(`(only|just)\s+(available|in stock)`),
			regexp.MustCompile(`rated\s+(above|below|over)\s+\d`),
		},
	},
	{
		intent:   intent.Information,
		keywords: []string{"tell me about", "information", "details", "describe", "what is"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`tell me about`),
			regexp.MustCompile(`(information|details)\s+(about|on)`),
			regexp.MustCompile(`(describe|explain)`),
			regexp.MustCompile(`what is\s+`),
		},
	},
}
