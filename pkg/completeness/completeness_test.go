package completeness

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tabwise/reconcile/pkg/tables"
)

func tenRowTable() *tables.Table {
	rows := make([][]string, 0, 11)
	for i := 0; i < 7; i++ {
		rows = append(rows, []string{"x", "filled"})
	}
	for i := 0; i < 3; i++ {
		rows = append(rows, []string{"x", ""})
	}
	// A fully blank row must not count in the denominator.
	rows = append(rows, []string{"", ""})
	return &tables.Table{
		File:    "batch1.csv",
		Headers: []string{"Serial Number", "Deceased Name"},
		Rows:    rows,
	}
}

func TestComputeFillRate(t *testing.T) {
	records := Compute(tenRowTable())
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	want := Record{
		File:    "batch1.csv",
		Field:   "deceased name",
		Filled:  7,
		Total:   10,
		Percent: 70.0,
	}
	if diff := cmp.Diff(want, records[1]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeSkipsEmptyHeaders(t *testing.T) {
	tbl := &tables.Table{
		File:    "f.csv",
		Headers: []string{"name", "", "   "},
		Rows:    [][]string{{"a", "b", "c"}},
	}
	records := Compute(tbl)
	if len(records) != 1 || records[0].Field != "name" {
		t.Errorf("records = %v, want only the named column", records)
	}
}

func TestComputeEmptyTable(t *testing.T) {
	tbl := &tables.Table{File: "empty.csv", Headers: []string{"name"}}
	records := Compute(tbl)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if !r.NoData() {
		t.Errorf("expected NoData for zero-row table, got %+v", r)
	}
	if r.Percent != 0 {
		t.Errorf("Percent = %v, want 0 for no data", r.Percent)
	}
}

func TestComputeDuplicateHeadersLastColumnWins(t *testing.T) {
	tbl := &tables.Table{
		File:    "dup.csv",
		Headers: []string{"name", "name"},
		Rows: [][]string{
			{"a", ""},
			{"b", "c"},
		},
	}
	records := Compute(tbl)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 for duplicate headers", len(records))
	}
	if records[0].Filled != 1 {
		t.Errorf("Filled = %d, want last column's count", records[0].Filled)
	}
}

func TestMergeOrdersByFieldAndFile(t *testing.T) {
	records := []Record{
		{File: "b.csv", Field: "name", Filled: 5, Total: 10, Percent: 50},
		{File: "a.csv", Field: "name", Filled: 9, Total: 10, Percent: 90},
		{File: "a.csv", Field: "county", Filled: 10, Total: 10, Percent: 100},
	}

	dist := Merge(records)

	if len(dist) != 2 || dist[0].Field != "county" || dist[1].Field != "name" {
		t.Fatalf("fields not sorted: %+v", dist)
	}
	names, _ := dist.Field("name")
	if names[0].File != "a.csv" || names[1].File != "b.csv" {
		t.Errorf("files not ordered by identifier: %+v", names)
	}
}

func TestMeanAndWorst(t *testing.T) {
	dist := Merge([]Record{
		{File: "a.csv", Field: "name", Percent: 90, Filled: 9, Total: 10},
		{File: "b.csv", Field: "name", Percent: 50, Filled: 5, Total: 10},
		{File: "c.csv", Field: "name"}, // no data, excluded from the mean
	})

	if got := dist.Mean("name"); got != 70 {
		t.Errorf("Mean = %v, want 70", got)
	}
	worst, ok := dist.Worst("name")
	if !ok || worst.File != "c.csv" {
		t.Errorf("Worst = %+v ok=%v, want the zero-percent record", worst, ok)
	}
	if _, ok := dist.Field("missing"); ok {
		t.Error("Field(missing) should report absence")
	}
}
