package kpi

import (
	"testing"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/stretchr/testify/assert"
)

// An empty filtered view must yield zeros and empty series from every
// metric, never a fault, even when all columns are present.
func TestEmptyViewYieldsZerosEverywhere(t *testing.T) {
	view := newView(nil,
		dataset.ColSessionID,
		dataset.ColIPAddress,
		dataset.ColDemoRequest,
		dataset.ColAIAssistantRequest,
		dataset.ColConversionStatus,
		dataset.ColSales,
		dataset.ColProductType,
		dataset.ColProductID,
		dataset.ColMarketingExpense,
		dataset.ColNewCustomers,
		dataset.ColTotalCustomers,
		dataset.ColChurnedCustomers,
		dataset.ColMarketSize,
		dataset.ColCampaignID,
		dataset.ColCampaignName,
		dataset.ColCampaignSpend,
		dataset.ColCampaignRevenue,
		dataset.ColDeliveryTimeDays,
		dataset.ColDeliveryStatus,
		dataset.ColJobTypeRequested,
		dataset.ColJobsPlaced,
	)

	for name, scalar := range map[string]Scalar{
		"conversion rate":  ConversionRate(view),
		"acquisition cost": AcquisitionCost(view),
		"retention rate":   RetentionRate(view),
		"penetration":      MarketPenetration(view),
		"total sales":      TotalSales(view),
		"job success rate": JobSuccessRate(view),
		"unique sessions":  UniqueSessions(view),
		"unique visitors":  UniqueVisitors(view),
	} {
		assert.Equal(t, StatusOK, scalar.Status, name)
		assert.Zero(t, scalar.Value, name)
	}

	for name, series := range map[string]Series{
		"monthly cac":         MonthlyAcquisitionCost(view),
		"monthly retention":   MonthlyRetention(view),
		"monthly penetration": MonthlyPenetration(view),
	} {
		assert.Equal(t, StatusOK, series.Status, name)
		assert.Empty(t, series.Points, name)
	}

	assert.Empty(t, MonthlySalesGrowth(view).Points)
	assert.Empty(t, QuarterlySalesByProduct(view).Groups)
	assert.Empty(t, DailySalesByProduct(view).Groups)
	assert.Empty(t, CampaignROI(view).Items)
	assert.Empty(t, ProductPopularity(view).Items)

	delivery := Delivery(view)
	assert.Equal(t, StatusOK, delivery.Status)
	assert.Zero(t, delivery.AvgDeliveryDays)
	assert.Zero(t, delivery.OnTimeRate)
	assert.Empty(t, delivery.Histogram)

	channel := ConversionByChannel(view)
	assert.Equal(t, StatusOK, channel.Status)
	assert.Zero(t, channel.DemoRate)
	assert.Zero(t, channel.AssistantRate)
}
