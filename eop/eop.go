// Package eop supplies measured Earth orientation parameters from the
// IERS finals tables: polar motion, the UT1 offset, and the observed
// nutation corrections that the frame rotations fold into the analytical
// models. The semicolon-delimited CSV renditions of finals.all and
// finals2000A.all are understood; columns are resolved by header name.
package eop

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExtrapolationError reports a query outside the tabulated range. The
// boundary-extrapolated values are carried for callers that accept them.
type ExtrapolationError struct {
	Values []float64
}

func (e *ExtrapolationError) Error() string {
	if len(e.Values) == 1 {
		return "value was extrapolated"
	}
	return "values were extrapolated"
}

// cell is an optional CSV value. IERS finals rows leave columns empty
// beyond each parameter's observation or prediction horizon.
type cell struct {
	value float64
	ok    bool
}

func (c cell) or(other cell) cell {
	if c.ok {
		return c
	}
	return other
}

// finalsRecord is one row of a finals CSV file. Both file flavors share
// the layout; finals.all populates dPsi/dEpsilon and finals2000A.all
// populates dX/dY.
type finalsRecord struct {
	mjd              float64
	year, month, day int
	xPole, yPole     cell
	deltaUT1UTC      cell
	dPsi, dEps       cell
	dX, dY           cell
}

func (r finalsRecord) merge(other finalsRecord) finalsRecord {
	r.dPsi = r.dPsi.or(other.dPsi)
	r.dEps = r.dEps.or(other.dEps)
	r.dX = r.dX.or(other.dX)
	r.dY = r.dY.or(other.dY)
	return r
}

// finalsColumns maps the named columns to their indices. Optional columns
// absent from the header are -1.
type finalsColumns struct {
	mjd, year, month, day                         int
	xPole, yPole, deltaUT1UTC, dPsi, dEps, dX, dY int
}

func resolveColumns(header []string) (finalsColumns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	required := func(name string) (int, error) {
		i, found := index[name]
		if !found {
			return 0, fmt.Errorf("finals CSV is missing the %q column", name)
		}
		return i, nil
	}
	optional := func(name string) int {
		i, found := index[name]
		if !found {
			return -1
		}
		return i
	}

	var cols finalsColumns
	var err error
	if cols.mjd, err = required("MJD"); err != nil {
		return cols, err
	}
	if cols.year, err = required("Year"); err != nil {
		return cols, err
	}
	if cols.month, err = required("Month"); err != nil {
		return cols, err
	}
	if cols.day, err = required("Day"); err != nil {
		return cols, err
	}
	cols.xPole = optional("x_pole")
	cols.yPole = optional("y_pole")
	cols.deltaUT1UTC = optional("UT1-UTC")
	cols.dPsi = optional("dPsi")
	cols.dEps = optional("dEpsilon")
	cols.dX = optional("dX")
	cols.dY = optional("dY")
	return cols, nil
}

func parseCell(row []string, index int) (cell, error) {
	if index < 0 || index >= len(row) {
		return cell{}, nil
	}
	field := strings.TrimSpace(row[index])
	if field == "" {
		return cell{}, nil
	}
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return cell{}, err
	}
	return cell{value: value, ok: true}, nil
}

func parseIntField(row []string, index int) (int, error) {
	if index >= len(row) {
		return 0, fmt.Errorf("row has only %d fields", len(row))
	}
	return strconv.Atoi(strings.TrimSpace(row[index]))
}

func parseFinalsRow(cols finalsColumns, row []string, line int) (finalsRecord, error) {
	var rec finalsRecord
	var err error

	fail := func(err error) (finalsRecord, error) {
		return finalsRecord{}, fmt.Errorf("finals CSV record %d: %w", line, err)
	}

	mjd, err := parseCell(row, cols.mjd)
	if err != nil {
		return fail(err)
	}
	if !mjd.ok {
		return fail(errors.New("missing MJD"))
	}
	rec.mjd = mjd.value
	if rec.year, err = parseIntField(row, cols.year); err != nil {
		return fail(err)
	}
	if rec.month, err = parseIntField(row, cols.month); err != nil {
		return fail(err)
	}
	if rec.day, err = parseIntField(row, cols.day); err != nil {
		return fail(err)
	}
	if rec.xPole, err = parseCell(row, cols.xPole); err != nil {
		return fail(err)
	}
	if rec.yPole, err = parseCell(row, cols.yPole); err != nil {
		return fail(err)
	}
	if rec.deltaUT1UTC, err = parseCell(row, cols.deltaUT1UTC); err != nil {
		return fail(err)
	}
	if rec.dPsi, err = parseCell(row, cols.dPsi); err != nil {
		return fail(err)
	}
	if rec.dEps, err = parseCell(row, cols.dEps); err != nil {
		return fail(err)
	}
	if rec.dX, err = parseCell(row, cols.dX); err != nil {
		return fail(err)
	}
	if rec.dY, err = parseCell(row, cols.dY); err != nil {
		return fail(err)
	}
	return rec, nil
}

// readFinals parses every row of a finals CSV stream.
func readFinals(r io.Reader) ([]finalsRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("finals CSV header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []finalsRecord
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("finals CSV record %d: %w", line, err)
		}
		rec, err := parseFinalsRow(cols, row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
