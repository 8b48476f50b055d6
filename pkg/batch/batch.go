// Package batch converts the NDC column of a CSV or XLSX file and
// writes the result into an appended column, collecting a run report.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pharmdata/ndc-api/pkg/ndc"
)

// Options configure one run over a tabular file.
type Options struct {
	Input     string
	Output    string // empty: "<stem>_converted<ext>" next to the input
	Column    string // header name of the column holding the codes
	Direction ndc.Direction
	Workers   int // row conversion parallelism, defaults to GOMAXPROCS
}

// ColumnSuffix is appended to the source column's name to form the
// output column: "_11digit" going up, "_10digit" going down.
func ColumnSuffix(d ndc.Direction) string {
	if d == ndc.To10Digit {
		return "_10digit"
	}
	return "_11digit"
}

type rowResult struct {
	res ndc.Result
	err error
}

// Process reads the input table, converts the selected column row by
// row, and writes the table back out with the converted values in an
// appended column. Rows are converted in parallel: the engine is pure,
// so rows are independent of each other. Failed rows keep the source
// value in the new column and are reported as warnings.
func Process(ctx context.Context, opts Options) (*Report, error) {
	t, err := readTable(opts.Input)
	if err != nil {
		return nil, err
	}

	col := -1
	for i, name := range t.header {
		if name == opts.Column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column %q not found, available columns: %s",
			opts.Column, strings.Join(t.header, ", "))
	}

	convert := ndc.To11
	if opts.Direction == ndc.To10Digit {
		convert = ndc.To10
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]rowResult, len(t.rows))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range t.rows {
		g.Go(func() error {
			res, err := convert(cellAt(t.rows[i], col))
			results[i] = rowResult{res: res, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, row failures live in results

	report := &Report{}
	t.header = append(t.header, opts.Column+ColumnSuffix(opts.Direction))
	for i := range t.rows {
		raw := cellAt(t.rows[i], col)
		out := raw // failed rows keep the source value
		if results[i].err == nil {
			out = results[i].res.Code
		}
		for len(t.rows[i]) < len(t.header)-1 {
			t.rows[i] = append(t.rows[i], "") // pad ragged rows
		}
		t.rows[i] = append(t.rows[i], out)
		report.observe(i+1, raw, results[i].res, results[i].err)
	}

	output := opts.Output
	if output == "" {
		output = defaultOutput(opts.Input)
	}
	if err := t.write(output); err != nil {
		return nil, err
	}
	report.Output = output
	return report, nil
}

// cellAt returns the cell at index col, or "" for short rows.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
