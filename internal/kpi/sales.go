package kpi

import (
	"time"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/shopspring/decimal"
)

var (
	totalSalesReq   = Require(dataset.ColSales)
	productSalesReq = Require(dataset.ColSales, dataset.ColProductType)
	salesGrowthReq  = Require(dataset.ColSales)
	jobSuccessReq   = Require(dataset.ColJobsPlaced, dataset.ColJobTypeRequested)
)

// TotalSales is the summed revenue over the view.
func TotalSales(t *dataset.Table) Scalar {
	if missing := totalSalesReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}
	total := decimal.Zero
	for _, row := range t.Rows() {
		total = total.Add(row.Sales)
	}
	return okScalar(total.InexactFloat64())
}

// QuarterlySalesByProduct is revenue per calendar quarter, one series per
// product type.
func QuarterlySalesByProduct(t *dataset.Table) GroupedSeries {
	return salesByProduct(t, quarterKey)
}

// DailySalesByProduct is revenue per day, one series per product type.
func DailySalesByProduct(t *dataset.Table) GroupedSeries {
	return salesByProduct(t, dayKey)
}

func salesByProduct(t *dataset.Table, bucket func(time.Time) string) GroupedSeries {
	if missing := productSalesReq.Missing(t); missing != nil {
		return GroupedSeries{Status: StatusUnavailable, Groups: []SeriesGroup{}, Missing: missing}
	}

	sums := make(map[string]map[string]decimal.Decimal)
	for _, row := range t.Rows() {
		if sums[row.ProductType] == nil {
			sums[row.ProductType] = make(map[string]decimal.Decimal)
		}
		key := bucket(row.Date)
		sums[row.ProductType][key] = sums[row.ProductType][key].Add(row.Sales)
	}

	groups := make([]SeriesGroup, 0, len(sums))
	for _, product := range sortedKeys(sums) {
		buckets := sums[product]
		points := make([]Point, 0, len(buckets))
		for _, key := range sortedKeys(buckets) {
			points = append(points, Point{Bucket: key, Value: buckets[key].InexactFloat64()})
		}
		groups = append(groups, SeriesGroup{Group: product, Points: points})
	}
	return GroupedSeries{Status: StatusOK, Groups: groups}
}

// MonthlySalesGrowth is the percent change of monthly revenue between
// consecutive observed months. The first month has no prior period and its
// growth is null rather than zero; a zero prior month yields 0.
func MonthlySalesGrowth(t *dataset.Table) NullableSeries {
	if missing := salesGrowthReq.Missing(t); missing != nil {
		return NullableSeries{Status: StatusUnavailable, Points: []NullablePoint{}, Missing: missing}
	}

	sums := make(map[string]decimal.Decimal)
	for _, row := range t.Rows() {
		month := monthKey(row.Date)
		sums[month] = sums[month].Add(row.Sales)
	}

	months := sortedKeys(sums)
	points := make([]NullablePoint, 0, len(months))
	var prev decimal.Decimal
	for i, month := range months {
		current := sums[month]
		if i == 0 {
			points = append(points, NullablePoint{Bucket: month})
		} else {
			growth := 0.0
			if !prev.IsZero() {
				growth = current.Sub(prev).Div(prev).InexactFloat64() * 100
			}
			points = append(points, NullablePoint{Bucket: month, Value: &growth})
		}
		prev = current
	}
	return NullableSeries{Status: StatusOK, Points: points}
}

// JobSuccessRate is jobs placed over jobs requested as a percentage.
// Requests count rows with a non-empty job type.
func JobSuccessRate(t *dataset.Table) Scalar {
	if missing := jobSuccessReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}

	var placed, requested float64
	for _, row := range t.Rows() {
		placed += float64(row.JobsPlaced)
		if row.JobTypeRequested != "" {
			requested++
		}
	}
	return okScalar(ratio(placed, requested) * 100)
}
