package kpi

import "github.com/aisolutions-bi/dashboard-backend/internal/dataset"

var (
	retentionReq   = Require(dataset.ColTotalCustomers, dataset.ColChurnedCustomers)
	penetrationReq = Require(dataset.ColTotalCustomers, dataset.ColMarketSize)
)

// RetentionRate is the percentage of the customer base kept after churn.
// The base is the maximum reported customer count in the view; churn is
// summed across it.
func RetentionRate(t *dataset.Table) Scalar {
	if missing := retentionReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}

	var base, churned int64
	for _, row := range t.Rows() {
		if row.TotalCustomers > base {
			base = row.TotalCustomers
		}
		churned += row.ChurnedCustomers
	}
	return okScalar(ratio(float64(base-churned), float64(base)) * 100)
}

// MonthlyRetention is the retention trend with the base and churn taken
// per calendar month.
func MonthlyRetention(t *dataset.Table) Series {
	if missing := retentionReq.Missing(t); missing != nil {
		return unavailableSeries(missing)
	}

	base := make(map[string]int64)
	churned := make(map[string]int64)
	for _, row := range t.Rows() {
		month := monthKey(row.Date)
		if row.TotalCustomers > base[month] {
			base[month] = row.TotalCustomers
		}
		churned[month] += row.ChurnedCustomers
	}

	points := make([]Point, 0, len(base))
	for _, month := range sortedKeys(base) {
		rate := ratio(float64(base[month]-churned[month]), float64(base[month])) * 100
		points = append(points, Point{Bucket: month, Value: rate})
	}
	return okSeries(points)
}

// MarketPenetration is the customer base as a percentage of the total
// addressable market, both taken as view maxima.
func MarketPenetration(t *dataset.Table) Scalar {
	if missing := penetrationReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}

	var customers, market int64
	for _, row := range t.Rows() {
		if row.TotalCustomers > customers {
			customers = row.TotalCustomers
		}
		if row.MarketSize > market {
			market = row.MarketSize
		}
	}
	return okScalar(ratio(float64(customers), float64(market)) * 100)
}

// MonthlyPenetration is the penetration trend with maxima taken per month.
func MonthlyPenetration(t *dataset.Table) Series {
	if missing := penetrationReq.Missing(t); missing != nil {
		return unavailableSeries(missing)
	}

	customers := make(map[string]int64)
	market := make(map[string]int64)
	for _, row := range t.Rows() {
		month := monthKey(row.Date)
		if row.TotalCustomers > customers[month] {
			customers[month] = row.TotalCustomers
		}
		if row.MarketSize > market[month] {
			market[month] = row.MarketSize
		}
	}

	points := make([]Point, 0, len(customers))
	for _, month := range sortedKeys(customers) {
		rate := ratio(float64(customers[month]), float64(market[month])) * 100
		points = append(points, Point{Bucket: month, Value: rate})
	}
	return okSeries(points)
}
