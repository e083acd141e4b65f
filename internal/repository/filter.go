package repository

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultPageSize is the page size used by catalog listings when the
	// caller omits or mangles the limit parameter.
	DefaultPageSize = 9

	// DefaultOccasionPageSize is the page size for the occasions listing.
	DefaultOccasionPageSize = 10
)

// PriceRangeAll is the sentinel meaning "no price restriction".
const PriceRangeAll = "all"

// ProductFilter is the composed predicate set for catalog queries. The
// zero value of an optional field means the filter is not applied; all
// supplied filters combine with AND.
type ProductFilter struct {
	Category    string
	Subcategory string
	Occasion    string
	Size        string
	Search      string
	PriceMin    *float64
	PriceMax    *float64
}

// where renders the filter into a parameterized WHERE clause. startIndex
// is the first positional parameter number to use, so callers can append
// their own LIMIT/OFFSET parameters afterwards.
func (f ProductFilter) where(startIndex int) (string, []interface{}, int) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := startIndex

	add := func(cond string, vals ...interface{}) {
		conditions = append(conditions, cond)
		args = append(args, vals...)
		argIndex += len(vals)
	}

	if f.Category != "" {
		add(fmt.Sprintf("category = $%d", argIndex), f.Category)
	}
	if f.Subcategory != "" {
		add(fmt.Sprintf("subcategory = $%d", argIndex), f.Subcategory)
	}
	if f.Occasion != "" {
		add(fmt.Sprintf("occasion = $%d", argIndex), f.Occasion)
	}
	if f.Size != "" {
		add(fmt.Sprintf("size = $%d", argIndex), f.Size)
	}
	if f.Search != "" {
		add(fmt.Sprintf("name ILIKE $%d", argIndex), "%"+f.Search+"%")
	}
	if f.PriceMin != nil && f.PriceMax != nil {
		add(fmt.Sprintf("price BETWEEN $%d AND $%d", argIndex, argIndex+1), *f.PriceMin, *f.PriceMax)
	}

	if len(conditions) == 0 {
		return "", args, argIndex
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, argIndex
}

// ParsePriceRange parses a "min-max" token into price bounds. The
// sentinel "all", an empty token, or anything that does not parse as two
// numbers yields no bounds. The leniency is deliberate: a mangled price
// filter degrades to an unfiltered listing instead of failing the request.
func ParsePriceRange(token string) (min, max *float64) {
	if token == "" || token == PriceRangeAll {
		return nil, nil
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return nil, nil
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, nil
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, nil
	}

	return &lo, &hi
}

// Pagination holds 1-based page bounds for a listing query
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination coerces raw page/limit parameters into valid bounds.
// Absent or non-numeric values fall back to page 1 and defaultLimit;
// anything below 1 is floored to 1 so the offset can never go negative.
func ParsePagination(pageStr, limitStr string, defaultLimit int) Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}

	return Pagination{Page: page, Limit: limit}
}

// Offset returns the row offset for the page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total / limit) for a matching row count
func (p Pagination) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
