package dashboard

import (
	"time"

	"github.com/aisolutions-bi/dashboard-backend/internal/kpi"
)

// Request is the date window for a panel. Zero endpoints mean the full
// table span; supplying only one endpoint also falls back to the full span.
type Request struct {
	Start time.Time
	End   time.Time
}

// RangeInfo describes the loaded table for the frontend's date picker.
type RangeInfo struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
	Rows    int    `json:"rows"`
}

// MetricWithTrend pairs a headline scalar with its monthly trend.
type MetricWithTrend struct {
	Overall kpi.Scalar `json:"overall"`
	Monthly kpi.Series `json:"monthly"`
}

// ExecutivePanel backs the executive summary tab.
type ExecutivePanel struct {
	Traffic         kpi.TrafficOverview `json:"traffic"`
	AcquisitionCost MetricWithTrend     `json:"acquisition_cost"`
	Retention       MetricWithTrend     `json:"retention"`
	Penetration     MetricWithTrend     `json:"penetration"`
}

// SalesTotals is the scorecard row at the top of the sales tab.
type SalesTotals struct {
	TotalSales     kpi.Scalar `json:"total_sales"`
	UniqueSessions kpi.Scalar `json:"unique_sessions"`
	UniqueVisitors kpi.Scalar `json:"unique_visitors"`
	ConversionRate kpi.Scalar `json:"conversion_rate"`
	JobSuccessRate kpi.Scalar `json:"job_success_rate"`
}

// SalesPanel backs the sales insights tab.
type SalesPanel struct {
	Totals            SalesTotals           `json:"totals"`
	QuarterlySales    kpi.GroupedSeries     `json:"quarterly_sales"`
	DailySales        kpi.GroupedSeries     `json:"daily_sales"`
	ChannelConversion kpi.ChannelConversion `json:"channel_conversion"`
	MonthlyGrowth     kpi.NullableSeries    `json:"monthly_growth"`
	CampaignROI       kpi.Breakdown         `json:"campaign_roi"`
}

// ProductPanel backs the product insights tab.
type ProductPanel struct {
	Popularity          kpi.Breakdown           `json:"popularity"`
	TopProduct          string                  `json:"top_product,omitempty"`
	ConversionByProduct kpi.Breakdown           `json:"conversion_by_product"`
	Delivery            kpi.DeliveryPerformance `json:"delivery"`
}
