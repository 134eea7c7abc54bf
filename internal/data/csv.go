// Package data loads tensors from disk and prepares them for training.
package data

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/neurox-ml/neurox/internal/errs"
	"github.com/neurox-ml/neurox/internal/tensor"
)

// LoadCSV reads a headerless grid of floats from path. See ReadCSV.
func LoadCSV(path string) (*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IO(err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, errs.Wrap(err, "data.LoadCSV %s", path)
	}
	return t, nil
}

// ReadCSV parses a headerless, comma-separated grid of floats into a
// rows x cols tensor.
//
// Blank lines are skipped. Fields are trimmed before parsing and any field
// that is not a number becomes 0. Empty input and rows of differing length
// are reported as errs.ErrInvalidArgument; reader failures as errs.ErrIO.
func ReadCSV(r io.Reader) (*tensor.Tensor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var (
		values []float32
		rows   int
		cols   int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, errs.InvalidArgument("malformed csv: %v", perr)
			}
			return nil, errs.IO(err)
		}
		if isBlank(record) {
			continue
		}

		if rows == 0 {
			cols = len(record)
		} else if len(record) != cols {
			line, _ := reader.FieldPos(0)
			return nil, errs.InvalidArgument("csv has non-uniform row length: line %d has %d fields, want %d",
				line, len(record), cols)
		}

		for _, field := range record {
			values = append(values, parseField(field))
		}
		rows++
	}

	if rows == 0 {
		return nil, errs.InvalidArgument("empty csv")
	}
	return tensor.FromSlice(values, rows, cols)
}

func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

// parseField converts one field, mapping anything unparsable to 0.
func parseField(field string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}
