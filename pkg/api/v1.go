package routing

import (
	"context"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pharmdata/ndc-api/pkg/batch"
	"github.com/pharmdata/ndc-api/pkg/database"
	"github.com/pharmdata/ndc-api/pkg/ndc"
)

type PlainOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type StatsOutput struct {
	Body database.CachedStats
}

type ConvertInput struct {
	Code      string `query:"code" required:"true" doc:"NDC code, 10 or 11 digits, separators allowed"`
	Direction string `query:"direction" default:"10to11" enum:"10to11,11to10" doc:"Conversion direction"`
}

type ConvertOutput struct {
	Body struct {
		Input      string         `json:"input"`
		Output     string         `json:"output"`
		Variant    ndc.Variant    `json:"variant"`
		Confidence ndc.Confidence `json:"confidence"`
	}
}

type BatchConvertInput struct {
	Body struct {
		Codes     []string `json:"codes" minItems:"1" maxItems:"10000" doc:"Raw NDC codes"`
		Direction string   `json:"direction" enum:"10to11,11to10" doc:"Conversion direction"`
	}
}

type BatchConvertOutput struct {
	Body struct {
		Results []batch.Item  `json:"results"`
		Report  *batch.Report `json:"report"`
	}
}

type SearchConversionsInput struct {
	Code   string `query:"code" required:"true" doc:"Digit string to look up, matches past inputs and outputs"`
	Limit  int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum number of results"`
	Offset int    `query:"offset" default:"0" minimum:"0" doc:"Offset for pagination"`
}

type SearchConversionsOutput struct {
	Body struct {
		Total   int64                 `json:"total"`
		Results []database.Conversion `json:"results"`
	}
}

func Setup(api huma.API) {
	api.UseMiddleware(authMiddleware(api))

	huma.Register(api, huma.Operation{
		OperationID: "HealthCheck",
		Method:      "GET",
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Check if the API is running",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*PlainOutput, error) {
		return &PlainOutput{
			ContentType: "text/plain",
			Body:        []byte("OK"),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ConvertCode",
		Method:      "GET",
		Path:        "/v1/convert",
		Summary:     "Convert a code",
		Description: "Convert a single NDC between the 10-digit and 11-digit representations",
		Tags:        []string{"Convert"},
	}, func(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
		direction, err := ndc.ParseDirection(input.Direction)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid direction", err)
		}

		code, err := ndc.Normalize(input.Code)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid code", err)
		}

		convert := ndc.To11
		if direction == ndc.To10Digit {
			convert = ndc.To10
		}
		res, err := convert(code)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("cannot convert code", err)
		}

		if err := database.RecordConversion(ctx, code, direction, res); err != nil {
			log.Printf("Failed to record conversion: %v", err)
		}

		resp := &ConvertOutput{}
		resp.Body.Input = code
		resp.Body.Output = res.Code
		resp.Body.Variant = res.Variant
		resp.Body.Confidence = res.Confidence
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ConvertBatch",
		Method:      "POST",
		Path:        "/v1/convert/batch",
		Summary:     "Convert a batch of codes",
		Description: "Convert a list of NDCs in one direction and get per-code results plus a run report; failed codes are reported, not rejected",
		Tags:        []string{"Convert"},
	}, func(ctx context.Context, input *BatchConvertInput) (*BatchConvertOutput, error) {
		direction, err := ndc.ParseDirection(input.Body.Direction)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid direction", err)
		}

		items, report := batch.ConvertAll(ctx, input.Body.Codes, direction, 0)

		if err := database.RecordRun(ctx, direction, "api", report); err != nil {
			log.Printf("Failed to record run: %v", err)
		}

		resp := &BatchConvertOutput{}
		resp.Body.Results = items
		resp.Body.Report = report
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "SearchConversions",
		Method:      "GET",
		Path:        "/v1/conversions",
		Summary:     "Search past conversions",
		Description: "Find recorded conversions matching a digit string",
		Tags:        []string{"Convert"},
	}, func(ctx context.Context, input *SearchConversionsInput) (*SearchConversionsOutput, error) {
		conversions, total, err := database.ConversionsByCode(input.Code, input.Limit, input.Offset)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to search conversions", err)
		}
		resp := &SearchConversionsOutput{}
		resp.Body.Total = total
		resp.Body.Results = conversions
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "GetStatistics",
		Method:      "GET",
		Path:        "/v1/statistics",
		Summary:     "Get statistics",
		Description: "Get statistics about recorded conversions and runs",
		Tags:        []string{"Statistics"},
	}, func(ctx context.Context, input *struct{}) (*StatsOutput, error) {
		stats := database.GetCachedStats()
		if stats == nil {
			go database.ComputeAndCacheStats(false)
			return nil, huma.Error503ServiceUnavailable("stats are being computed, please retry later")
		}
		return &StatsOutput{
			Body: *stats,
		}, nil
	})
}
