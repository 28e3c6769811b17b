package kpi

import (
	"testing"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
)

var deliveryColumns = []dataset.Column{
	dataset.ColProductID,
	dataset.ColDeliveryTimeDays,
	dataset.ColDeliveryStatus,
}

func TestDeliverySummarizesView(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), ProductID: "p1", DeliveryTimeDays: 2, DeliveryStatus: "On Time"},
		{Date: day(t, "2023-01-02"), ProductID: "p2", DeliveryTimeDays: 6, DeliveryStatus: "Late"},
	}, deliveryColumns...)

	result := Delivery(view)
	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if result.AvgDeliveryDays != 4.0 {
		t.Fatalf("expected avg 4 days, got %v", result.AvgDeliveryDays)
	}
	if result.OnTimeRate != 50.0 {
		t.Fatalf("expected 50%% on time, got %v", result.OnTimeRate)
	}
	if len(result.Histogram) == 0 {
		t.Fatal("expected histogram bins")
	}

	var total float64
	for _, bin := range result.Histogram {
		total += bin.Value
	}
	if total != 2 {
		t.Fatalf("histogram should count every delivery, got %v", total)
	}
}

func TestDeliverySingleValueHistogram(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), ProductID: "p1", DeliveryTimeDays: 3, DeliveryStatus: "On Time"},
		{Date: day(t, "2023-01-02"), ProductID: "p2", DeliveryTimeDays: 3, DeliveryStatus: "On Time"},
	}, deliveryColumns...)

	result := Delivery(view)
	if len(result.Histogram) != 1 {
		t.Fatalf("expected single bin for constant delivery time, got %v", result.Histogram)
	}
	if result.Histogram[0].Value != 2 {
		t.Fatalf("expected both rows in the bin, got %v", result.Histogram[0])
	}
}

func TestDeliveryUnavailableWithoutStatusColumn(t *testing.T) {
	view := newView(nil, dataset.ColProductID, dataset.ColDeliveryTimeDays)

	result := Delivery(view)
	if result.Status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", result.Status)
	}
}
