package kpi

import (
	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/shopspring/decimal"
)

var acquisitionCostReq = Require(dataset.ColMarketingExpense, dataset.ColNewCustomers)

// AcquisitionCost is total marketing expense per new customer over the
// whole view. Zero new customers yields 0, not an undefined cost.
func AcquisitionCost(t *dataset.Table) Scalar {
	if missing := acquisitionCostReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}

	expense := decimal.Zero
	var customers int64
	for _, row := range t.Rows() {
		expense = expense.Add(row.MarketingExpense)
		customers += row.NewCustomers
	}
	if customers == 0 {
		return okScalar(0)
	}
	cost := expense.Div(decimal.NewFromInt(customers))
	return okScalar(cost.InexactFloat64())
}

// MonthlyAcquisitionCost is the per-month cost trend.
func MonthlyAcquisitionCost(t *dataset.Table) Series {
	if missing := acquisitionCostReq.Missing(t); missing != nil {
		return unavailableSeries(missing)
	}

	expense := make(map[string]decimal.Decimal)
	customers := make(map[string]int64)
	for _, row := range t.Rows() {
		month := monthKey(row.Date)
		expense[month] = expense[month].Add(row.MarketingExpense)
		customers[month] += row.NewCustomers
	}

	points := make([]Point, 0, len(expense))
	for _, month := range sortedKeys(expense) {
		value := 0.0
		if n := customers[month]; n > 0 {
			value = expense[month].Div(decimal.NewFromInt(n)).InexactFloat64()
		}
		points = append(points, Point{Bucket: month, Value: value})
	}
	return okSeries(points)
}
