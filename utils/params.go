package utils

import (
	"math"
	"net/http"
	"strconv"

	"merma/filters"
)

// ParseListingQuery maps the listing page's query string onto a filter
// query. Absent bounds widen to cover every price.
func ParseListingQuery(r *http.Request) filters.Query {
	q := r.URL.Query()

	pr := filters.PriceRange{Min: 0, Max: math.Inf(1)}
	if v := q.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			pr.Min = f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			pr.Max = f
		}
	}

	return filters.Query{
		SearchTerm: q.Get("search"),
		Category:   q.Get("category"),
		SortBy:     q.Get("sort"),
		PriceRange: pr,
	}
}

// ParseProductID reads a numeric product id from a path or query value.
func ParseProductID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
