package kpi

import (
	"fmt"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
)

var deliveryReq = Require(
	dataset.ColProductID,
	dataset.ColDeliveryTimeDays,
	dataset.ColDeliveryStatus,
)

const (
	deliveryStatusOnTime  = "On Time"
	deliveryHistogramBins = 30
)

// DeliveryPerformance summarizes fulfilment: mean delivery time, the
// on-time percentage, and a fixed-bin distribution of delivery times.
type DeliveryPerformance struct {
	Status          Status           `json:"status"`
	AvgDeliveryDays float64          `json:"avg_delivery_days"`
	OnTimeRate      float64          `json:"on_time_rate"`
	Histogram       []Point          `json:"histogram"`
	Missing         []dataset.Column `json:"missing_columns,omitempty"`
}

func Delivery(t *dataset.Table) DeliveryPerformance {
	if missing := deliveryReq.Missing(t); missing != nil {
		return DeliveryPerformance{Status: StatusUnavailable, Histogram: []Point{}, Missing: missing}
	}

	rows := t.Rows()
	var totalDays, onTime float64
	for _, row := range rows {
		totalDays += row.DeliveryTimeDays
		if row.DeliveryStatus == deliveryStatusOnTime {
			onTime++
		}
	}

	return DeliveryPerformance{
		Status:          StatusOK,
		AvgDeliveryDays: ratio(totalDays, float64(len(rows))),
		OnTimeRate:      ratio(onTime, float64(len(rows))) * 100,
		Histogram:       deliveryHistogram(rows),
	}
}

func deliveryHistogram(rows []dataset.Row) []Point {
	if len(rows) == 0 {
		return []Point{}
	}

	min, max := rows[0].DeliveryTimeDays, rows[0].DeliveryTimeDays
	for _, row := range rows[1:] {
		if row.DeliveryTimeDays < min {
			min = row.DeliveryTimeDays
		}
		if row.DeliveryTimeDays > max {
			max = row.DeliveryTimeDays
		}
	}

	if min == max {
		return []Point{{
			Bucket: fmt.Sprintf("%.1f", min),
			Value:  float64(len(rows)),
		}}
	}

	width := (max - min) / deliveryHistogramBins
	counts := make([]float64, deliveryHistogramBins)
	for _, row := range rows {
		bin := int((row.DeliveryTimeDays - min) / width)
		if bin >= deliveryHistogramBins {
			bin = deliveryHistogramBins - 1
		}
		counts[bin]++
	}

	points := make([]Point, 0, deliveryHistogramBins)
	for i, count := range counts {
		lo := min + float64(i)*width
		points = append(points, Point{
			Bucket: fmt.Sprintf("%.1f-%.1f", lo, lo+width),
			Value:  count,
		})
	}
	return points
}
