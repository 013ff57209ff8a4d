// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Read and write adjacency matrices as comma-separated text, one row per
//     line, the layout numpy's loadtxt/savetxt use.
//
// Contract:
//   - Cells are parsed as float64 after trimming spaces, so "1", "1.0" and
//     "1.000000000000000000e+00" are all accepted.
//   - Empty lines are skipped; every other row must have the same width.
//   - Reading does not validate adjacency semantics; call ValidateAdjacency.

package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadCSV parses a numeric matrix.
//
// Errors: ErrBadShape (no rows or ragged rows), ErrParse.
// Complexity: O(r·c).
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var (
		data []float64
		rows int
		cols int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("ReadCSV: row %d: %w: %v", rows+1, ErrBadShape, err)
			}
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		if cols == 0 {
			cols = len(rec)
		}
		for j, cell := range rec {
			x, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("ReadCSV: (%d,%d) %q: %w", rows, j, cell, ErrParse)
			}
			data = append(data, x)
		}
		rows++
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ReadCSV: %w: no data", ErrBadShape)
	}

	return mat.NewDense(rows, cols, data), nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadCSVFile: %w", err)
	}
	defer f.Close()

	m, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteCSV writes m row by row. Integral values are written without a
// fractional part, so a 0/1 adjacency matrix round-trips as "0,1,...".
func WriteCSV(w io.Writer, m mat.Matrix) error {
	if m == nil {
		return fmt.Errorf("WriteCSV: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	cw := csv.NewWriter(w)
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
