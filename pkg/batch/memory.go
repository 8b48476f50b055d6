package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pharmdata/ndc-api/pkg/ndc"
)

// Item is the outcome of converting one code of an in-memory batch.
type Item struct {
	Input      string         `json:"input"`
	Output     string         `json:"output,omitempty"`
	Variant    ndc.Variant    `json:"variant,omitempty"`
	Confidence ndc.Confidence `json:"confidence,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// ConvertAll converts a slice of raw codes for callers that already hold
// the values in memory, such as the API batch endpoint. Order is
// preserved; failed codes carry their error in the item and in the
// report's warnings.
func ConvertAll(ctx context.Context, codes []string, direction ndc.Direction, workers int) ([]Item, *Report) {
	convert := ndc.To11
	if direction == ndc.To10Digit {
		convert = ndc.To10
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]rowResult, len(codes))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range codes {
		g.Go(func() error {
			res, err := convert(codes[i])
			results[i] = rowResult{res: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{}
	items := make([]Item, len(codes))
	for i, code := range codes {
		item := Item{Input: code}
		if err := results[i].err; err != nil {
			item.Error = err.Error()
		} else {
			item.Output = results[i].res.Code
			item.Variant = results[i].res.Variant
			item.Confidence = results[i].res.Confidence
		}
		items[i] = item
		report.observe(i+1, code, results[i].res, results[i].err)
	}
	return items, report
}
