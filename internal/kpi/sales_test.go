package kpi

import (
	"testing"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
)

func TestTotalSalesSumsRevenue(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), Sales: amount("100.50")},
		{Date: day(t, "2023-01-02"), Sales: amount("49.50")},
	}, dataset.ColSales)

	result := TotalSales(view)
	if result.Value != 150.0 {
		t.Fatalf("expected 150, got %v", result.Value)
	}
}

func TestQuarterlySalesByProductGroupsAndOrders(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-04-10"), ProductType: "Chatbot", Sales: amount("30")},
		{Date: day(t, "2023-01-05"), ProductType: "Chatbot", Sales: amount("10")},
		{Date: day(t, "2023-02-20"), ProductType: "Chatbot", Sales: amount("20")},
		{Date: day(t, "2023-01-15"), ProductType: "Assistant", Sales: amount("5")},
	}, dataset.ColSales, dataset.ColProductType)

	result := QuarterlySalesByProduct(view)
	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected two product groups, got %d", len(result.Groups))
	}
	if result.Groups[0].Group != "Assistant" {
		t.Fatalf("expected groups ordered by label, got %q first", result.Groups[0].Group)
	}

	chatbot := result.Groups[1]
	if len(chatbot.Points) != 2 {
		t.Fatalf("expected two quarters, got %v", chatbot.Points)
	}
	if chatbot.Points[0].Bucket != "2023-Q1" || chatbot.Points[0].Value != 30 {
		t.Fatalf("unexpected first quarter %+v", chatbot.Points[0])
	}
	if chatbot.Points[1].Bucket != "2023-Q2" || chatbot.Points[1].Value != 30 {
		t.Fatalf("unexpected second quarter %+v", chatbot.Points[1])
	}
}

func TestMonthlySalesGrowthFirstBucketIsNull(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-10"), Sales: amount("100")},
		{Date: day(t, "2023-02-10"), Sales: amount("150")},
		{Date: day(t, "2023-03-10"), Sales: amount("75")},
	}, dataset.ColSales)

	result := MonthlySalesGrowth(view)
	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if len(result.Points) != 3 {
		t.Fatalf("expected three months, got %v", result.Points)
	}
	if result.Points[0].Value != nil {
		t.Fatalf("first month growth should be null, got %v", *result.Points[0].Value)
	}
	if result.Points[1].Value == nil || *result.Points[1].Value != 50.0 {
		t.Fatalf("expected 50%% growth in second month, got %+v", result.Points[1])
	}
	if result.Points[2].Value == nil || *result.Points[2].Value != -50.0 {
		t.Fatalf("expected -50%% growth in third month, got %+v", result.Points[2])
	}
}

func TestMonthlySalesGrowthZeroPriorMonth(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-10"), Sales: amount("0")},
		{Date: day(t, "2023-02-10"), Sales: amount("150")},
	}, dataset.ColSales)

	result := MonthlySalesGrowth(view)
	if result.Points[1].Value == nil || *result.Points[1].Value != 0 {
		t.Fatalf("zero prior month should yield 0 growth, got %+v", result.Points[1])
	}
}

func TestJobSuccessRateCountsRequests(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), JobTypeRequested: "engineer", JobsPlaced: 1},
		{Date: day(t, "2023-01-02"), JobTypeRequested: "analyst"},
		{Date: day(t, "2023-01-03")},
	}, dataset.ColJobsPlaced, dataset.ColJobTypeRequested)

	result := JobSuccessRate(view)
	if result.Value != 50.0 {
		t.Fatalf("expected 50%% success, got %v", result.Value)
	}
}
