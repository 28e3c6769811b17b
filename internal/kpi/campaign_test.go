package kpi

import (
	"testing"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
)

var campaignColumns = []dataset.Column{
	dataset.ColCampaignID,
	dataset.ColCampaignName,
	dataset.ColCampaignSpend,
	dataset.ColCampaignRevenue,
}

func TestCampaignROIGroupsByCampaign(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), CampaignID: "c1", CampaignName: "Launch", CampaignSpend: amount("100"), CampaignRevenue: amount("150")},
		{Date: day(t, "2023-01-02"), CampaignID: "c1", CampaignName: "Launch", CampaignSpend: amount("100"), CampaignRevenue: amount("250")},
		{Date: day(t, "2023-01-03"), CampaignID: "c2", CampaignName: "Retarget", CampaignSpend: amount("50"), CampaignRevenue: amount("25")},
	}, campaignColumns...)

	result := CampaignROI(view)
	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected two campaigns, got %v", result.Items)
	}
	if result.Items[0].Label != "Launch" || result.Items[0].Value != 100.0 {
		t.Fatalf("unexpected first campaign %+v", result.Items[0])
	}
	if result.Items[1].Label != "Retarget" || result.Items[1].Value != -50.0 {
		t.Fatalf("unexpected second campaign %+v", result.Items[1])
	}
}

func TestCampaignROIZeroSpendIsDefined(t *testing.T) {
	view := newView([]dataset.Row{
		{Date: day(t, "2023-01-01"), CampaignID: "c1", CampaignName: "Organic", CampaignSpend: amount("0"), CampaignRevenue: amount("500")},
	}, campaignColumns...)

	result := CampaignROI(view)
	if result.Items[0].Value != 0 {
		t.Fatalf("zero spend should yield 0 ROI, got %v", result.Items[0].Value)
	}
}

func TestCampaignROIUnavailableWithoutSpendColumn(t *testing.T) {
	view := newView(nil, dataset.ColCampaignID, dataset.ColCampaignName, dataset.ColCampaignRevenue)

	result := CampaignROI(view)
	if result.Status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", result.Status)
	}
	if len(result.Missing) != 1 || result.Missing[0] != dataset.ColCampaignSpend {
		t.Fatalf("unexpected missing columns %v", result.Missing)
	}
}
