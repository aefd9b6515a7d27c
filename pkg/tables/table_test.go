package tables

import "testing"

func TestCellShortRows(t *testing.T) {
	tbl := &Table{
		File:    "a.csv",
		Headers: []string{"one", "two", "three"},
		Rows: [][]string{
			{"x", "y", "z"},
			{"x"},
			{},
		},
	}

	if got := tbl.Cell(0, 2); got != "z" {
		t.Errorf("Cell(0,2) = %q, want %q", got, "z")
	}
	if got := tbl.Cell(1, 2); got != "" {
		t.Errorf("Cell(1,2) = %q, want empty for short row", got)
	}
	if got := tbl.Cell(2, 0); got != "" {
		t.Errorf("Cell(2,0) = %q, want empty for empty row", got)
	}
	if got := tbl.Cell(99, 0); got != "" {
		t.Errorf("Cell(99,0) = %q, want empty for out-of-range row", got)
	}
	if got := tbl.Cell(0, -1); got != "" {
		t.Errorf("Cell(0,-1) = %q, want empty for negative column", got)
	}
}

func TestCellTrims(t *testing.T) {
	tbl := &Table{Rows: [][]string{{"  padded  "}}}
	if got := tbl.Cell(0, 0); got != "padded" {
		t.Errorf("Cell(0,0) = %q, want trimmed value", got)
	}
}

func TestNonBlankRows(t *testing.T) {
	tbl := &Table{
		Headers: []string{"a", "b"},
		Rows: [][]string{
			{"1", "2"},
			{"", "  "},
			{"", "3"},
			{},
			{"4"},
		},
	}
	if got := tbl.NonBlankRows(); got != 3 {
		t.Errorf("NonBlankRows() = %d, want 3", got)
	}
}

func TestColumn(t *testing.T) {
	tbl := &Table{
		Headers: []string{"a", "b"},
		Rows: [][]string{
			{"1", "2"},
			{"3"},
		},
	}
	got := tbl.Column(1)
	if len(got) != 2 || got[0] != "2" || got[1] != "" {
		t.Errorf("Column(1) = %v, want [2 \"\"]", got)
	}
}
