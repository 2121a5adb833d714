// Package query implements the shared list-retrieval contract: exact-match
// filtering, free-text search, allow-listed ordering and page-based
// pagination, applied uniformly over list endpoints.
package query

import (
	"strings"

	"gorm.io/gorm"
)

// Spec declares what a given list endpoint allows. Anything outside the
// allow-lists is silently ignored rather than rejected, matching the
// behavior of the filter backends this mirrors.
type Spec struct {
	// FilterColumns maps an exposed filter name to a database column.
	FilterColumns map[string]string
	// SearchColumn is the column free-text search runs against.
	SearchColumn string
	// SortColumns lists columns ordering may reference.
	SortColumns []string
	// DefaultSort is the ORDER BY applied when no (valid) sort is requested.
	DefaultSort string
}

// Params carries the caller-supplied list parameters. Filters are
// AND-combined exact matches; there is no OR and no range predicates.
type Params struct {
	Filters  map[string]string
	Search   string
	Sort     string // column name, "-" prefix for descending
	Page     int
	PageSize int
}

// Apply narrows db according to spec and params and returns the scoped query.
func Apply(db *gorm.DB, spec Spec, p Params) *gorm.DB {
	for name, value := range p.Filters {
		column, ok := spec.FilterColumns[name]
		if !ok || value == "" {
			continue
		}
		db = db.Where(column+" = ?", value)
	}

	if p.Search != "" && spec.SearchColumn != "" {
		db = db.Where(spec.SearchColumn+" ILIKE ?", "%"+p.Search+"%")
	}

	db = db.Order(orderClause(spec, p.Sort))

	if p.PageSize > 0 {
		page := p.Page
		if page < 1 {
			page = 1
		}
		db = db.Limit(p.PageSize).Offset((page - 1) * p.PageSize)
	}

	return db
}

// orderClause resolves the requested sort against the allow-list,
// falling back to the spec default.
func orderClause(spec Spec, sort string) string {
	if sort != "" {
		desc := strings.HasPrefix(sort, "-")
		column := strings.TrimPrefix(sort, "-")
		for _, allowed := range spec.SortColumns {
			if column == allowed {
				if desc {
					return column + " DESC"
				}
				return column + " ASC"
			}
		}
	}
	if spec.DefaultSort != "" {
		return spec.DefaultSort
	}
	return "created_at DESC"
}
