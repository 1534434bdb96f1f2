package directory

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPageSize is the rows-per-page used until the viewer picks another.
const DefaultPageSize = 5

// MaxPageSize bounds rows-per-page; larger sizes are clamped.
const MaxPageSize = 100

// PageSizeOptions lists the rows-per-page choices offered to viewers.
func PageSizeOptions() []int {
	return []int{5, 10, 25}
}

// FilterScope selects where the name filter applies relative to pagination.
type FilterScope string

const (
	// FilterScopePage filters only the rows of the current page slice.
	FilterScopePage FilterScope = "page"
	// FilterScopeAll filters the whole sorted set before slicing a page.
	FilterScopeAll FilterScope = "all"
)

// ParseFilterScope resolves a configured filter scope; empty means FilterScopePage.
func ParseFilterScope(raw string) (FilterScope, error) {
	switch FilterScope(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FilterScopePage:
		return FilterScopePage, nil
	case FilterScopeAll:
		return FilterScopeAll, nil
	default:
		return "", fmt.Errorf("unknown filter scope %q", raw)
	}
}

// Query is the view state a projection is computed from.
type Query struct {
	Sort     SortState
	Page     int
	PageSize int
	Filter   string
	Scope    FilterScope
}

// Projection is the set of rows visible for one Query.
type Projection struct {
	Rows      []Record
	Total     int
	Page      int
	PageSize  int
	PageCount int
}

// Range returns the 1-based positions of the first and last row of the page.
// An empty set reads 0-0 and a page past the end reads total-total.
func (p Projection) Range() (from, to int) {
	if p.Total == 0 || p.PageSize <= 0 {
		return 0, 0
	}
	if p.Page < 0 || p.Page >= p.PageCount {
		return p.Total, p.Total
	}
	start := p.Page * p.PageSize
	return start + 1, start + min(p.PageSize, p.Total-start)
}

// HasNext reports whether a page follows the current one.
func (p Projection) HasNext() bool {
	return p.Page >= 0 && p.Page < p.PageCount-1
}

// Project sorts, paginates, and filters records for display.
//
// With FilterScopePage the filter runs after slicing, so a page can show
// fewer rows than PageSize even when matches exist on other pages.
func Project(records []Record, q Query) Projection {
	q = normalizeQuery(q)

	rows := SortRecords(records, q.Sort)
	if q.Scope == FilterScopeAll {
		rows = FilterByName(rows, q.Filter)
	}
	total := len(rows)
	rows = paginate(rows, q.Page, q.PageSize)
	if q.Scope != FilterScopeAll {
		rows = FilterByName(rows, q.Filter)
	}

	return Projection{
		Rows:      rows,
		Total:     total,
		Page:      q.Page,
		PageSize:  q.PageSize,
		PageCount: pageCount(total, q.PageSize),
	}
}

// SortRecords returns a stably sorted copy of records. Equal keys keep their
// input order in both directions.
func SortRecords(records []Record, sort SortState) []Record {
	out := append([]Record(nil), records...)
	if !sort.Active() {
		return out
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		c := strings.Compare(a.Value(sort.Field), b.Value(sort.Field))
		if sort.Direction == DirectionDesc {
			return -c
		}
		return c
	})
	return out
}

// FilterByName keeps records whose full name contains filter, ignoring case.
// Matching lowercases both sides without folding, so "strasse" does not
// match "Straße". An empty filter keeps every record.
func FilterByName(records []Record, filter string) []Record {
	if filter == "" {
		return records
	}
	caser := cases.Lower(language.Und)
	needle := caser.String(filter)
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if strings.Contains(caser.String(record.FullName), needle) {
			out = append(out, record)
		}
	}
	return out
}

// paginate slices one page. Bounds are checked against the page count so
// page*size is only computed when it cannot exceed len(records).
func paginate(records []Record, page, size int) []Record {
	if page >= pageCount(len(records), size) {
		return []Record{}
	}
	start := page * size
	end := start + min(size, len(records)-start)
	return records[start:end]
}

func pageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

func normalizeQuery(q Query) Query {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.Scope == "" {
		q.Scope = FilterScopePage
	}
	return q
}
