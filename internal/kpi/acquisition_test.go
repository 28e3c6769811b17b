package kpi

import (
	"testing"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
)

func TestAcquisitionCostOverall(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), MarketingExpense: amount("300"), NewCustomers: 2},
		{Date: day(t, "2023-02-01"), MarketingExpense: amount("200"), NewCustomers: 3},
	}, dataset.ColMarketingExpense, dataset.ColNewCustomers)

	result := AcquisitionCost(view)
	if result.Value != 100.0 {
		t.Fatalf("expected CAC 100, got %v", result.Value)
	}
}

func TestAcquisitionCostZeroCustomers(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), MarketingExpense: amount("300")},
	}, dataset.ColMarketingExpense, dataset.ColNewCustomers)

	result := AcquisitionCost(view)
	if result.Status != StatusOK || result.Value != 0 {
		t.Fatalf("zero customers should yield 0, got %+v", result)
	}
}

func TestMonthlyAcquisitionCostTrend(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-02-01"), MarketingExpense: amount("100"), NewCustomers: 4},
		{Date: day(t, "2023-01-01"), MarketingExpense: amount("100"), NewCustomers: 2},
	}, dataset.ColMarketingExpense, dataset.ColNewCustomers)

	result := MonthlyAcquisitionCost(view)
	if len(result.Points) != 2 {
		t.Fatalf("expected two months, got %v", result.Points)
	}
	if result.Points[0].Bucket != "2023-01" || result.Points[0].Value != 50.0 {
		t.Fatalf("unexpected first month %+v", result.Points[0])
	}
	if result.Points[1].Bucket != "2023-02" || result.Points[1].Value != 25.0 {
		t.Fatalf("unexpected second month %+v", result.Points[1])
	}
}

func TestAcquisitionCostUnavailableWithoutExpense(t *testing.T) {
	view := newView(nil, dataset.ColNewCustomers)

	result := AcquisitionCost(view)
	if result.Status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", result.Status)
	}
	if len(result.Missing) != 1 || result.Missing[0] != dataset.ColMarketingExpense {
		t.Fatalf("unexpected missing columns %v", result.Missing)
	}
}
