package kpi

import "github.com/aisolutions-bi/dashboard-backend/internal/dataset"

var (
	conversionRateReq    = Require(dataset.ColConversionStatus)
	channelConversionReq = Require(dataset.ColDemoRequest, dataset.ColAIAssistantRequest, dataset.ColConversionStatus)
	productConversionReq = Require(dataset.ColProductType, dataset.ColConversionStatus)
	uniqueVisitorsReq    = Require(dataset.ColIPAddress)
)

// ConversionRate is conversions over sessions as a percentage. Sessions
// fall back to the row count when no session column exists.
func ConversionRate(t *dataset.Table) Scalar {
	if missing := conversionRateReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}
	var conversions float64
	for _, row := range t.Rows() {
		if row.ConversionStatus {
			conversions++
		}
	}
	return okScalar(ratio(conversions, sessionCount(t)) * 100)
}

// ChannelConversion compares how demo requests and assistant requests
// convert, as percentages of each request subset.
type ChannelConversion struct {
	Status        Status           `json:"status"`
	DemoRate      float64          `json:"demo_rate"`
	AssistantRate float64          `json:"assistant_rate"`
	Missing       []dataset.Column `json:"missing_columns,omitempty"`
}

func ConversionByChannel(t *dataset.Table) ChannelConversion {
	if missing := channelConversionReq.Missing(t); missing != nil {
		return ChannelConversion{Status: StatusUnavailable, Missing: missing}
	}

	var demoTotal, demoConverted, assistantTotal, assistantConverted float64
	for _, row := range t.Rows() {
		if row.DemoRequest {
			demoTotal++
			if row.ConversionStatus {
				demoConverted++
			}
		}
		if row.AIAssistantRequest {
			assistantTotal++
			if row.ConversionStatus {
				assistantConverted++
			}
		}
	}
	return ChannelConversion{
		Status:        StatusOK,
		DemoRate:      ratio(demoConverted, demoTotal) * 100,
		AssistantRate: ratio(assistantConverted, assistantTotal) * 100,
	}
}

// ConversionByProduct is the conversion percentage per product type,
// ordered by product label.
func ConversionByProduct(t *dataset.Table) Breakdown {
	if missing := productConversionReq.Missing(t); missing != nil {
		return unavailableBreakdown(missing)
	}

	totals := make(map[string]float64)
	converted := make(map[string]float64)
	for _, row := range t.Rows() {
		totals[row.ProductType]++
		if row.ConversionStatus {
			converted[row.ProductType]++
		}
	}

	items := make([]LabelValue, 0, len(totals))
	for _, product := range sortedKeys(totals) {
		items = append(items, LabelValue{
			Label: product,
			Value: ratio(converted[product], totals[product]) * 100,
		})
	}
	return okBreakdown(items)
}

// UniqueSessions counts distinct sessions, falling back to the row count
// when the session column is absent.
func UniqueSessions(t *dataset.Table) Scalar {
	return okScalar(sessionCount(t))
}

// UniqueVisitors counts distinct visitor addresses.
func UniqueVisitors(t *dataset.Table) Scalar {
	if missing := uniqueVisitorsReq.Missing(t); missing != nil {
		return unavailableScalar(missing)
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows() {
		seen[row.IPAddress] = struct{}{}
	}
	return okScalar(float64(len(seen)))
}

func sessionCount(t *dataset.Table) float64 {
	if !t.Has(dataset.ColSessionID) {
		return float64(t.Len())
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows() {
		seen[row.SessionID] = struct{}{}
	}
	return float64(len(seen))
}
