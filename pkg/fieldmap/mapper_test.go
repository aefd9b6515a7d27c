package fieldmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildExactAndFuzzy(t *testing.T) {
	registry := Registry{Fields: []Field{
		{Name: "pt_cause_no", Aliases: []string{"pt cause no", "cause no"}},
	}}
	headers := []string{"pt cause no", "pt_cause_no_(station)", "folio no"}

	m := Build(headers, registry)

	want := []string{"pt cause no", "pt_cause_no_(station)"}
	if diff := cmp.Diff(want, m.Headers("pt_cause_no")); diff != "" {
		t.Errorf("pt_cause_no headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"folio no"}, m.Unmapped); diff != "" {
		t.Errorf("unmapped mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPreservesAmbiguity(t *testing.T) {
	registry := Registry{Fields: []Field{
		{Name: "marital_status", Aliases: []string{"marital status", "status"}},
		{Name: "case_status", Aliases: []string{"case status", "status"}},
	}}

	m := Build([]string{"status"}, registry)

	if got := m.Headers("marital_status"); len(got) != 1 {
		t.Errorf("marital_status headers = %v, want the ambiguous header retained", got)
	}
	if got := m.Headers("case_status"); len(got) != 1 {
		t.Errorf("case_status headers = %v, want the ambiguous header retained", got)
	}
	if len(m.Ambiguous) != 1 || m.Ambiguous[0].Header != "status" {
		t.Fatalf("Ambiguous = %v, want the status header surfaced once", m.Ambiguous)
	}
	wantFields := []string{"marital_status", "case_status"}
	if diff := cmp.Diff(wantFields, m.Ambiguous[0].Fields); diff != "" {
		t.Errorf("ambiguous fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDeterministicAcrossInputOrder(t *testing.T) {
	registry := Default()
	a := Build([]string{"folio no", "pt cause no", "name", "year"}, registry)
	b := Build([]string{"year", "name", "pt cause no", "folio no", "folio no"}, registry)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("mapping depends on input order (-a +b):\n%s", diff)
	}
}

func TestBuildIgnoresEmptyHeaders(t *testing.T) {
	m := Build([]string{"", "folio no"}, Default())
	for _, u := range m.Unmapped {
		if u == "" {
			t.Error("empty header registered in mapping")
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"date of death", "death date", 1},              // stop word removed, same set
		{"pt cause no", "pt cause no", 1},               // identical
		{"telephone no", "telephone number", 1.0 / 3.0}, // one of three words shared
		{"of the", "date", 0},                           // empty after stop words
		{"", "date", 0},
		{"alpha beta", "gamma delta", 0},
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	if Similarity("date of death", "death date") != Similarity("death date", "date of death") {
		t.Error("Similarity is not symmetric")
	}
}

func TestDefaultRegistryValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default registry invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		reg     Registry
		wantErr bool
	}{
		{"valid", Registry{Fields: []Field{{Name: "a", Aliases: []string{"a"}}}}, false},
		{"no fields", Registry{}, true},
		{"empty name", Registry{Fields: []Field{{Aliases: []string{"a"}}}}, true},
		{"duplicate", Registry{Fields: []Field{
			{Name: "a", Aliases: []string{"a"}},
			{Name: "a", Aliases: []string{"b"}},
		}}, true},
		{"no aliases", Registry{Fields: []Field{{Name: "a"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
