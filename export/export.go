// Package export serializes pipeline results for downstream reporters and
// plotters. Scores and ranking can be written as CSV or JSON, optionally
// compressed with zstd or lz4.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/doccosmos/pershout"
)

// Format selects the serialization format.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
)

// Compression selects the stream compression applied around the format.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

// Options contains configuration options for writing results.
type Options struct {
	Format      Format
	Compression Compression
}

// DefaultOptions contains the default configuration options for export.
var DefaultOptions = Options{
	Format:      FormatCSV,
	Compression: CompressionNone,
}

// record is the JSON shape of a single scored point.
type record struct {
	Index        int      `json:"index"`
	Rank         int      `json:"rank"`
	Persistence  *float64 `json:"persistence,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	Disconnected bool     `json:"disconnected,omitempty"`
}

// Write serializes res to w in ranking order. Disconnected points appear
// with empty score fields (CSV) or a disconnected flag (JSON); NaN is never
// emitted.
func Write(w io.Writer, res *pershout.Result, optFns ...func(o *Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	var (
		out    io.Writer = w
		closer io.Closer
	)
	switch opts.Compression {
	case CompressionNone:
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		out, closer = zw, zw
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		out, closer = lw, lw
	default:
		return fmt.Errorf("unknown compression: %d", opts.Compression)
	}

	var err error
	switch opts.Format {
	case FormatCSV:
		err = writeCSV(out, res)
	case FormatJSON:
		err = writeJSON(out, res)
	default:
		err = fmt.Errorf("unknown format: %d", opts.Format)
	}
	if err != nil {
		return err
	}

	if closer != nil {
		return closer.Close()
	}
	return nil
}

// WriteFile creates path and writes res to it.
func WriteFile(path string, res *pershout.Result, optFns ...func(o *Options)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, res, optFns...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeCSV(w io.Writer, res *pershout.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "rank", "persistence", "score"}); err != nil {
		return err
	}
	for rank, i := range res.Ranking {
		row := []string{strconv.Itoa(i), strconv.Itoa(rank), "", ""}
		if !math.IsNaN(res.Scores[i]) {
			row[2] = strconv.FormatFloat(res.Persistence[i], 'g', -1, 64)
			row[3] = strconv.FormatFloat(res.Scores[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, res *pershout.Result) error {
	records := make([]record, 0, len(res.Ranking))
	for rank, i := range res.Ranking {
		rec := record{Index: i, Rank: rank}
		if math.IsNaN(res.Scores[i]) {
			rec.Disconnected = true
		} else {
			p, s := res.Persistence[i], res.Scores[i]
			rec.Persistence, rec.Score = &p, &s
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	return enc.Encode(records)
}
