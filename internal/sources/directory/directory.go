// Package directory loads CSV extracts from a filesystem directory. Files in
// the wild arrive in mixed encodings and with mixed delimiters; decoding and
// sniffing happen here so the analyzer only ever sees clean tables.
package directory

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/logging"
	"github.com/tabwise/reconcile/pkg/tables"
)

// Source lists and parses the CSV files of one directory.
type Source struct {
	root string
}

// New creates a directory source rooted at dir.
func New(dir string) *Source {
	return &Source{root: dir}
}

// Files lists the CSV files of the directory, sorted by name. The extension
// match is case-insensitive. Subdirectories are not descended into.
func (s *Source) Files(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.WrapIO("list", s.root, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads and parses one file into a raw table. The first record is the
// header row; ragged records are kept as-is.
func (s *Source) Load(ctx context.Context, file string) (*tables.Table, error) {
	path := filepath.Join(s.root, file)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	text, enc := decode(raw)
	if enc != "utf-8" {
		logging.FromContext(ctx).Debug().
			Str("file", file).
			Str("encoding", enc).
			Msg("Decoded non-UTF-8 file")
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", file, err)
	}
	if len(records) == 0 {
		return &tables.Table{File: file}, nil
	}

	return &tables.Table{
		File:    file,
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// decode converts raw bytes to a string, falling back from UTF-8 to
// Windows-1252 and then Latin-1. Every byte sequence decodes under one of the
// three, so decode never fails.
func decode(raw []byte) (string, string) {
	if utf8.Valid(raw) {
		return string(raw), "utf-8"
	}
	if text, err := decodeCharmap(raw, charmap.Windows1252); err == nil {
		return text, "windows-1252"
	}
	text, _ := decodeCharmap(raw, charmap.ISO8859_1)
	return text, "latin-1"
}

func decodeCharmap(raw []byte, cm *charmap.Charmap) (string, error) {
	out, err := io.ReadAll(transform.NewReader(strings.NewReader(string(raw)), cm.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// sniffDelimiter picks the delimiter by counting candidates in the header
// line. Comma wins ties and is the default.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}

	delimiter := ','
	best := strings.Count(line, ",")
	for _, c := range []rune{';', '\t'} {
		if n := strings.Count(line, string(c)); n > best {
			best = n
			delimiter = c
		}
	}
	return delimiter
}
