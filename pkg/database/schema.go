package database

import (
	"time"

	"github.com/lib/pq"
)

type Model struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Conversion is an audit row for a single-code conversion served by the
// API. The same input converted in the same direction is upserted, so
// the table doubles as a lookup cache.
type Conversion struct {
	Model

	Input      string `json:"input" gorm:"primaryKey"`
	Direction  string `json:"direction" gorm:"primaryKey"`
	Output     string `json:"output" gorm:"index:idx_conversion_output"`
	Variant    string `json:"variant"`
	Confidence string `json:"confidence"`
}

// Run is the summary of one batch run.
type Run struct {
	Date      time.Time      `json:"date" gorm:"primaryKey;type:timestamptz"`
	Direction string         `json:"direction"`
	Source    string         `json:"source"` // input label, e.g. a filename or "api"
	Total     int            `json:"total"`
	Certain   int            `json:"certain"`
	Heuristic int            `json:"heuristic"`
	Ambiguous int            `json:"ambiguous"`
	Failed    int            `json:"failed"`
	Samples   pq.StringArray `json:"samples" gorm:"type:text[]"`
	Complete  bool           `json:"complete"`
}
