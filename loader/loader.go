// Package loader reads delimited numeric files into a pointset.Set.
// It owns delimiter handling and header skipping so the scoring core never
// touches file formats.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/doccosmos/pershout/pointset"
)

// Options contains configuration options for reading delimited files.
type Options struct {
	// Comma is the field delimiter.
	Comma rune

	// SkipHeader is the number of leading rows to discard.
	SkipHeader int
}

// DefaultOptions contains the default configuration options for the loader.
var DefaultOptions = Options{
	Comma:      ',',
	SkipHeader: 1,
}

// Read parses delimited float64 rows from r into a point set.
func Read(r io.Reader, optFns ...func(o *Options)) (*pointset.Set, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.TrimLeadingSpace = true
	// Row width is validated by pointset.New with a clearer error.
	cr.FieldsPerRecord = -1

	var rows [][]float64
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read delimited input: %w", err)
		}
		line++
		if line <= opts.SkipHeader {
			continue
		}

		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return pointset.New(rows)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, optFns ...func(o *Options)) (*pointset.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, optFns...)
}
