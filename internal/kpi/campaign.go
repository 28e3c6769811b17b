package kpi

import (
	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/shopspring/decimal"
)

var campaignROIReq = Require(
	dataset.ColCampaignID,
	dataset.ColCampaignName,
	dataset.ColCampaignSpend,
	dataset.ColCampaignRevenue,
)

// CampaignROI is (revenue - spend) / spend as a percentage per campaign,
// ordered by campaign id. A campaign with zero spend reports 0, never an
// infinite return.
func CampaignROI(t *dataset.Table) Breakdown {
	if missing := campaignROIReq.Missing(t); missing != nil {
		return unavailableBreakdown(missing)
	}

	spend := make(map[string]decimal.Decimal)
	revenue := make(map[string]decimal.Decimal)
	names := make(map[string]string)
	for _, row := range t.Rows() {
		spend[row.CampaignID] = spend[row.CampaignID].Add(row.CampaignSpend)
		revenue[row.CampaignID] = revenue[row.CampaignID].Add(row.CampaignRevenue)
		names[row.CampaignID] = row.CampaignName
	}

	items := make([]LabelValue, 0, len(spend))
	for _, id := range sortedKeys(spend) {
		roi := 0.0
		if !spend[id].IsZero() {
			roi = revenue[id].Sub(spend[id]).Div(spend[id]).InexactFloat64() * 100
		}
		label := names[id]
		if label == "" {
			label = id
		}
		items = append(items, LabelValue{Label: label, Value: roi})
	}
	return okBreakdown(items)
}
