// Package kpi computes the dashboard's derived metrics from a filtered
// event table. Every metric declares the columns it needs; when the table
// lacks one the metric reports itself unavailable instead of computing,
// and every ratio defines 0 as its value when the denominator is zero.
package kpi

import "github.com/aisolutions-bi/dashboard-backend/internal/dataset"

type Status string

const (
	StatusOK          Status = "ok"
	StatusUnavailable Status = "unavailable"
)

// Scalar is a single derived number, or an unavailable placeholder naming
// the columns the table was missing.
type Scalar struct {
	Status  Status           `json:"status"`
	Value   float64          `json:"value"`
	Missing []dataset.Column `json:"missing_columns,omitempty"`
}

func okScalar(value float64) Scalar {
	return Scalar{Status: StatusOK, Value: value}
}

func unavailableScalar(missing []dataset.Column) Scalar {
	return Scalar{Status: StatusUnavailable, Missing: missing}
}

// Point is one bucket of a trend series. Bucket keys sort chronologically.
type Point struct {
	Bucket string  `json:"bucket"`
	Value  float64 `json:"value"`
}

// NullablePoint carries a bucket whose value may be undefined, such as the
// first period of a growth series.
type NullablePoint struct {
	Bucket string   `json:"bucket"`
	Value  *float64 `json:"value"`
}

type Series struct {
	Status  Status           `json:"status"`
	Points  []Point          `json:"points"`
	Missing []dataset.Column `json:"missing_columns,omitempty"`
}

func okSeries(points []Point) Series {
	if points == nil {
		points = []Point{}
	}
	return Series{Status: StatusOK, Points: points}
}

func unavailableSeries(missing []dataset.Column) Series {
	return Series{Status: StatusUnavailable, Points: []Point{}, Missing: missing}
}

type NullableSeries struct {
	Status  Status           `json:"status"`
	Points  []NullablePoint  `json:"points"`
	Missing []dataset.Column `json:"missing_columns,omitempty"`
}

// SeriesGroup is one grouped trend, such as a product type's sales curve.
type SeriesGroup struct {
	Group  string  `json:"group"`
	Points []Point `json:"points"`
}

type GroupedSeries struct {
	Status  Status           `json:"status"`
	Groups  []SeriesGroup    `json:"groups"`
	Missing []dataset.Column `json:"missing_columns,omitempty"`
}

// LabelValue is one categorical entry, such as a campaign's ROI or a
// product's popularity count.
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Breakdown struct {
	Status  Status           `json:"status"`
	Items   []LabelValue     `json:"items"`
	Missing []dataset.Column `json:"missing_columns,omitempty"`
}

func okBreakdown(items []LabelValue) Breakdown {
	if items == nil {
		items = []LabelValue{}
	}
	return Breakdown{Status: StatusOK, Items: items}
}

func unavailableBreakdown(missing []dataset.Column) Breakdown {
	return Breakdown{Status: StatusUnavailable, Items: []LabelValue{}, Missing: missing}
}

// ratio applies the zero-denominator policy shared by every rate metric.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
