// Package rendermetrics exports opencensus metrics about the render loop.
//
// Nothing is exported until RegisterMetrics is called.
package rendermetrics

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeError     Outcome = "error"
	OutcomeCancelled Outcome = "cancelled"
)

var outcomeKey = tag.MustNewKey("outcome")

type Recorder struct {
	rowCount     *stats.Int64Measure
	rowCountView *view.View

	rowLatency     *stats.Float64Measure
	rowLatencyView *view.View
}

func New() *Recorder {
	r := &Recorder{}

	r.rowCount = stats.Int64("whitted/rows_rendered", "", stats.UnitDimensionless)
	r.rowCountView = &view.View{
		Name:        "whitted/rows_rendered",
		Description: "Counter of image rows that have been traced",

		TagKeys: []tag.Key{outcomeKey},

		Measure:     r.rowCount,
		Aggregation: view.Count(),
	}

	r.rowLatency = stats.Float64("whitted/row_latency", "", stats.UnitMilliseconds)
	r.rowLatencyView = &view.View{
		Name:        "whitted/row_latency",
		Description: "Time spent tracing a single image row",

		TagKeys: []tag.Key{outcomeKey},

		Measure:     r.rowLatency,
		Aggregation: view.Distribution(1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000),
	}

	return r
}

func (r *Recorder) Views() []*view.View {
	return []*view.View{r.rowCountView, r.rowLatencyView}
}

func (r *Recorder) RegisterMetrics() error {
	return view.Register(r.Views()...)
}

func (r *Recorder) UnregisterMetrics() {
	view.Unregister(r.Views()...)
}

// RecordRow notes that a row finished with the given outcome after elapsed.
// A nil Recorder records nothing.
func (r *Recorder) RecordRow(ctx context.Context, outcome Outcome, elapsed time.Duration) {
	if r == nil {
		return
	}

	stats.RecordWithOptions(
		ctx,
		stats.WithTags(tag.Insert(outcomeKey, string(outcome))),
		stats.WithMeasurements(
			r.rowCount.M(1),
			r.rowLatency.M(float64(elapsed)/float64(time.Millisecond)),
		))
}
