package mccis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// WriteCSV writes the matching as two comma-separated rows: the G1 IDs,
// then the G2 IDs, column i holding pair i. An empty result writes nothing.
func (r *Result) WriteCSV(w io.Writer) error {
	if len(r.Pairs) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(r.G1IDs()); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	if err := cw.Write(r.G2IDs()); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	cw.Flush()

	return cw.Error()
}

// ReadPairsCSV parses the layout written by WriteCSV. Empty input yields
// no pairs.
//
// Errors: ErrBadPairsCSV for anything but two rows of equal width.
func ReadPairsCSV(r io.Reader) ([]Pair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("ReadPairsCSV: %w: %v", ErrBadPairsCSV, err)
		}
		return nil, fmt.Errorf("ReadPairsCSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) != 2 || len(rows[0]) != len(rows[1]) {
		return nil, fmt.Errorf("ReadPairsCSV: %w: want 2 rows of equal width", ErrBadPairsCSV)
	}

	pairs := make([]Pair, len(rows[0]))
	for i := range pairs {
		pairs[i] = Pair{G1: rows[0][i], G2: rows[1][i]}
	}

	return pairs, nil
}
