package directory

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectSortPaginateFilterExample(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: "1", FullName: "Ann Lee"},
		{ID: "2", FullName: "Ann Kim"},
		{ID: "3", FullName: "Bob Lee"},
	}
	base := Query{Sort: SortState{Field: FieldFullName, Direction: DirectionAsc}, Page: 0, PageSize: 2}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "no filter", want: []string{"Ann Kim", "Ann Lee"}},
		{name: "ann keeps both", filter: "ann", want: []string{"Ann Kim", "Ann Lee"}},
		{name: "bob is on the next page", filter: "bob", want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q := base
			q.Filter = tc.filter
			got := Project(records, q)
			if diff := cmp.Diff(tc.want, names(got.Rows)); diff != "" {
				t.Fatalf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectFilterScopeAllFiltersBeforeSlicing(t *testing.T) {
	t.Parallel()

	q := Query{
		Sort:     SortState{Field: FieldFullName, Direction: DirectionAsc},
		PageSize: 2,
		Filter:   "bob",
		Scope:    FilterScopeAll,
	}
	got := Project(sampleRecords(), q)
	if diff := cmp.Diff([]string{"Bob Lee"}, names(got.Rows)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if got.Total != 1 || got.PageCount != 1 {
		t.Fatalf("total/pages = %d/%d, want 1/1", got.Total, got.PageCount)
	}
}

func TestSortRecordsIsStableInBothDirections(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: "a", FullName: "Same"},
		{ID: "b", FullName: "Alpha"},
		{ID: "c", FullName: "Same"},
		{ID: "d", FullName: "Zed"},
		{ID: "e", FullName: "Same"},
	}

	asc := SortRecords(records, SortState{Field: FieldFullName, Direction: DirectionAsc})
	if diff := cmp.Diff([]string{"b", "a", "c", "e", "d"}, ids(asc)); diff != "" {
		t.Fatalf("asc mismatch (-want +got):\n%s", diff)
	}
	desc := SortRecords(records, SortState{Field: FieldFullName, Direction: DirectionDesc})
	if diff := cmp.Diff([]string{"d", "a", "c", "e", "b"}, ids(desc)); diff != "" {
		t.Fatalf("desc mismatch (-want +got):\n%s", diff)
	}
	unsorted := SortRecords(records, SortState{})
	if diff := cmp.Diff(ids(records), ids(unsorted)); diff != "" {
		t.Fatalf("unsorted mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectPagesCoverEveryRecordOnce(t *testing.T) {
	t.Parallel()

	records := make([]Record, 0, 23)
	for i := range 23 {
		records = append(records, Record{ID: fmt.Sprintf("r%02d", i), FullName: fmt.Sprintf("Name %d", i%7)})
	}

	for _, size := range PageSizeOptions() {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			t.Parallel()
			q := Query{Sort: SortState{Field: FieldFullName, Direction: DirectionDesc}, PageSize: size}
			first := Project(records, q)
			var seen []string
			for page := range first.PageCount {
				q.Page = page
				got := Project(records, q)
				if len(got.Rows) > size {
					t.Fatalf("page %d has %d rows, size %d", page, len(got.Rows), size)
				}
				seen = append(seen, ids(got.Rows)...)
			}
			slices.Sort(seen)
			if diff := cmp.Diff(ids(records), seen); diff != "" {
				t.Fatalf("pages do not cover records once (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectEmptyFilterIsIdentityOnPage(t *testing.T) {
	t.Parallel()

	q := Query{PageSize: 2, Page: 1}
	got := Project(sampleRecords(), q)
	if diff := cmp.Diff([]string{"3"}, ids(got.Rows)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectUniqueSubstringReturnsThatRecord(t *testing.T) {
	t.Parallel()

	got := Project(sampleRecords(), Query{PageSize: 25, Filter: "KIM"})
	if diff := cmp.Diff([]string{"2"}, ids(got.Rows)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectNormalizesPaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    Query
		wantPage int
		wantSize int
		wantRows int
	}{
		{name: "negative page clamps", query: Query{Page: -3, PageSize: 2}, wantPage: 0, wantSize: 2, wantRows: 2},
		{name: "zero size uses default", query: Query{PageSize: 0}, wantPage: 0, wantSize: DefaultPageSize, wantRows: 3},
		{name: "page past end is empty", query: Query{Page: 9, PageSize: 5}, wantPage: 9, wantSize: 5, wantRows: 0},
		{name: "huge size clamps", query: Query{PageSize: math.MaxInt}, wantPage: 0, wantSize: MaxPageSize, wantRows: 3},
		{name: "huge size past first page", query: Query{Page: 2, PageSize: math.MaxInt}, wantPage: 2, wantSize: MaxPageSize, wantRows: 0},
		{name: "huge page", query: Query{Page: math.MaxInt, PageSize: 2}, wantPage: math.MaxInt, wantSize: 2, wantRows: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Project(sampleRecords(), tc.query)
			if got.Page != tc.wantPage || got.PageSize != tc.wantSize || len(got.Rows) != tc.wantRows {
				t.Fatalf("Project() = page %d size %d rows %d, want %d/%d/%d", got.Page, got.PageSize, len(got.Rows), tc.wantPage, tc.wantSize, tc.wantRows)
			}
			if got.Total != 3 {
				t.Fatalf("Total = %d, want 3", got.Total)
			}
		})
	}
}

func TestPaginateAndPageCountAvoidOverflow(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	if got := paginate(records, 2, math.MaxInt); len(got) != 0 {
		t.Fatalf("paginate(page 2, MaxInt) = %v, want empty", ids(got))
	}
	if got := paginate(records, 0, math.MaxInt); len(got) != 3 {
		t.Fatalf("paginate(page 0, MaxInt) = %v, want all", ids(got))
	}
	if got := paginate(records, math.MaxInt, 1); len(got) != 0 {
		t.Fatalf("paginate(page MaxInt, 1) = %v, want empty", ids(got))
	}
	if got := pageCount(3, math.MaxInt); got != 1 {
		t.Fatalf("pageCount(3, MaxInt) = %d, want 1", got)
	}
	if got := pageCount(7, 5); got != 2 {
		t.Fatalf("pageCount(7, 5) = %d, want 2", got)
	}
}

func TestProjectionRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		p        Projection
		wantFrom int
		wantTo   int
		wantNext bool
	}{
		{name: "empty", p: Projection{PageSize: 5}, wantFrom: 0, wantTo: 0},
		{name: "first page", p: Projection{Total: 7, PageSize: 5, PageCount: 2}, wantFrom: 1, wantTo: 5, wantNext: true},
		{name: "last page", p: Projection{Total: 7, Page: 1, PageSize: 5, PageCount: 2}, wantFrom: 6, wantTo: 7},
		{name: "past end", p: Projection{Total: 7, Page: math.MaxInt, PageSize: 5, PageCount: 2}, wantFrom: 7, wantTo: 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			from, to := tc.p.Range()
			if from != tc.wantFrom || to != tc.wantTo {
				t.Fatalf("Range() = %d-%d, want %d-%d", from, to, tc.wantFrom, tc.wantTo)
			}
			if got := tc.p.HasNext(); got != tc.wantNext {
				t.Fatalf("HasNext() = %v, want %v", got, tc.wantNext)
			}
		})
	}
}

func TestFilterByNameLowercasesWithoutFolding(t *testing.T) {
	t.Parallel()

	records := []Record{{ID: "1", FullName: "Jörg Straße"}, {ID: "2", FullName: "ÉMILE ZOLA"}}
	tests := []struct {
		filter string
		want   []string
	}{
		{filter: "strasse", want: []string{}},
		{filter: "STRAßE", want: []string{"1"}},
		{filter: "jÖrg", want: []string{"1"}},
		{filter: "émile", want: []string{"2"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, ids(FilterByName(records, tc.filter))); diff != "" {
			t.Fatalf("FilterByName(%q) mismatch (-want +got):\n%s", tc.filter, diff)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	_ = Project(records, Query{Sort: SortState{Field: FieldFullName, Direction: DirectionAsc}})
	if diff := cmp.Diff(sampleRecords(), records); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestParseFilterScope(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]FilterScope{"": FilterScopePage, "page": FilterScopePage, "ALL": FilterScopeAll} {
		got, err := ParseFilterScope(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFilterScope(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseFilterScope("everything"); err == nil {
		t.Fatal("expected error for unknown scope")
	}
}
