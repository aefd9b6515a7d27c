// Package fieldmap maps the normalized headers observed across a file set
// onto a fixed registry of canonical fields, by exact then fuzzy matching.
//
// The registry and every alias list are explicit ordered sequences, never
// maps: a header can satisfy more than one alias, and "first satisfying alias
// wins" must be reproducible across runs.
package fieldmap

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/normalize"
)

// Field is one canonical target field with its known historical spellings.
type Field struct {
	Name    string   `yaml:"name" json:"name"`
	Aliases []string `yaml:"aliases" json:"aliases"`
}

// Registry is the ordered list of canonical fields for a run. It is immutable
// once a run starts.
type Registry struct {
	Fields []Field `yaml:"fields" json:"fields"`
}

// Validate checks that the registry is usable: at least one field, no empty
// field names, no duplicate field names, and every field has at least one
// alias.
func (r Registry) Validate() error {
	if len(r.Fields) == 0 {
		return &errors.ValidationError{Field: "fields", Message: "registry has no fields"}
	}
	seen := make(map[string]bool, len(r.Fields))
	for _, f := range r.Fields {
		if f.Name == "" {
			return &errors.ValidationError{Field: "name", Message: "canonical field name is empty"}
		}
		if seen[f.Name] {
			return &errors.ValidationError{Field: f.Name, Message: "duplicate canonical field"}
		}
		seen[f.Name] = true
		if len(f.Aliases) == 0 {
			return &errors.ValidationError{Field: f.Name, Message: "canonical field has no aliases"}
		}
	}
	return nil
}

// LoadFile reads a registry from a YAML file.
func LoadFile(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, errors.WrapIO("read", path, err)
	}
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Registry{}, errors.WrapParse("yaml", path, err)
	}
	if err := r.Validate(); err != nil {
		return Registry{}, err
	}
	return r, nil
}

// Default returns the built-in registry for public trustee records, the
// schema the toolkit was originally built against. Aliases are listed in
// match priority order.
func Default() Registry {
	return Registry{Fields: []Field{
		{Name: "pt_cause_no", Aliases: []string{
			"pt cause no", "pt_cause_no", "cause no", "cause_no", "pt no", "pt_no",
			"pt cause no (station)", "pt_cause_no_(station)", "pt_cause_no_station",
		}},
		{Name: "folio_no", Aliases: []string{
			"folio no", "folio_no", "folio", "folio number", "folio_number",
		}},
		{Name: "deceased_name", Aliases: []string{
			"name of the deceased", "name of deceased", "deceased name",
			"deceased_name", "name", "deceased",
		}},
		{Name: "gender", Aliases: []string{"gender", "sex"}},
		{Name: "marital_status", Aliases: []string{"marital status", "marital_status", "status"}},
		{Name: "date_of_death", Aliases: []string{
			"date of death", "date_of_death", "death date", "death_date", "died",
		}},
		{Name: "religion", Aliases: []string{"religion", "faith"}},
		{Name: "county", Aliases: []string{"county", "location", "district"}},
		{Name: "station", Aliases: []string{"station", "court station", "court_station", "office"}},
		{Name: "assets", Aliases: []string{
			"assets", "estate", "property", "shares", "estate value", "estate_value", "value",
		}},
		{Name: "beneficiaries", Aliases: []string{
			"beneficiaries", "beneficiary", "heirs", "next of kin", "next_of_kin",
			"beneficiaries/ date of birth/ id no.", "beneficiaries/date of birth/idno",
		}},
		{Name: "telephone_no", Aliases: []string{
			"telephone no", "telephone_no", "phone", "tel", "telephone", "contact",
			"telephone no of the beneficiary", "telephone of beneficiary",
		}},
		{Name: "date_of_advertisement", Aliases: []string{
			"date of advertisement", "date_of_advertisement", "advertisement date",
			"advert date", "advert_date", "date of advertisement for claims",
			"date advertisement for claims",
		}},
		{Name: "date_of_confirmation", Aliases: []string{
			"date of confirmation", "date_of_confirmation", "confirmation date",
			"confirmed", "date of confirmation of grants",
		}},
		{Name: "date_account_drawn", Aliases: []string{
			"date account drawn", "date_account_drawn", "account drawn", "account_drawn",
		}},
		{Name: "date_payment_made", Aliases: []string{
			"date payment made", "date_payment_made", "payment date", "payment_date", "paid",
		}},
		{Name: "file_year", Aliases: []string{"year", "file year", "file_year"}},
		{Name: "serial_number", Aliases: []string{"serial number", "serial_number", "s/no", "sno", "no"}},
	}}
}

// normalizedAliases returns the field's aliases passed through header
// normalization, preserving order.
func (f Field) normalizedAliases() []string {
	out := make([]string, 0, len(f.Aliases))
	for _, a := range f.Aliases {
		if n := normalize.Header(a); n != "" {
			out = append(out, n)
		}
	}
	return out
}
