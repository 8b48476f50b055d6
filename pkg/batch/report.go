package batch

import (
	"errors"
	"fmt"

	"github.com/pharmdata/ndc-api/pkg/ndc"
)

// maxSamples limits the before/after pairs kept in a report.
const maxSamples = 5

// Sample is one before/after pair from a run.
type Sample struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Warning flags a row whose code failed to convert or converted
// ambiguously. Row is 1-based over data rows (the header is row 0).
type Warning struct {
	Row     int    `json:"row"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report summarizes a run: totals, counts per classifier confidence,
// and the first few conversions as samples. Row-level problems never
// abort a run; they are tallied and surfaced here instead.
type Report struct {
	Output    string    `json:"output,omitempty"`
	Total     int       `json:"total"`
	Certain   int       `json:"certain"`
	Heuristic int       `json:"heuristic"`
	Ambiguous int       `json:"ambiguous"`
	Failed    int       `json:"failed"`
	Samples   []Sample  `json:"samples"`
	Warnings  []Warning `json:"warnings"`
}

// observe records the outcome of a single row.
func (r *Report) observe(row int, before string, res ndc.Result, err error) {
	r.Total++

	if err != nil {
		r.Failed++
		if errors.Is(err, ndc.ErrUnconvertible) {
			// The classifier could not trace the code to a segmentation.
			r.Ambiguous++
		}
		r.Warnings = append(r.Warnings, Warning{Row: row, Code: before, Message: err.Error()})
		return
	}

	switch res.Confidence {
	case ndc.Certain:
		r.Certain++
	case ndc.Heuristic:
		r.Heuristic++
	case ndc.Ambiguous:
		r.Ambiguous++
		r.Warnings = append(r.Warnings, Warning{
			Row:     row,
			Code:    before,
			Message: fmt.Sprintf("ambiguous segmentation for %q, value kept as-is", before),
		})
	}

	if len(r.Samples) < maxSamples {
		r.Samples = append(r.Samples, Sample{Before: before, After: res.Code})
	}
}
