package kpi

import "github.com/aisolutions-bi/dashboard-backend/internal/dataset"

// TrafficPoint is one year of traffic versus demo requests.
type TrafficPoint struct {
	Year           string  `json:"year"`
	Traffic        float64 `json:"traffic"`
	DemoRequests   float64 `json:"demo_requests"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TrafficOverview is the executive funnel summary. It is always computable:
// traffic falls back from unique sessions to unique visitors to raw row
// counts, and demo requests count as zero when the column is absent.
type TrafficOverview struct {
	Points []TrafficPoint `json:"points"`
	// LatestConversionRate feeds the headline gauge; 0 for an empty view.
	LatestConversionRate float64 `json:"latest_conversion_rate"`
}

func TrafficByYear(t *dataset.Table) TrafficOverview {
	traffic := trafficCountsByYear(t)

	demo := make(map[string]float64, len(traffic))
	if t.Has(dataset.ColDemoRequest) {
		for _, row := range t.Rows() {
			if row.DemoRequest {
				demo[yearKey(row.Date)]++
			}
		}
	}

	overview := TrafficOverview{Points: []TrafficPoint{}}
	for _, year := range sortedKeys(traffic) {
		point := TrafficPoint{
			Year:           year,
			Traffic:        traffic[year],
			DemoRequests:   demo[year],
			ConversionRate: ratio(demo[year], traffic[year]) * 100,
		}
		overview.Points = append(overview.Points, point)
	}
	if n := len(overview.Points); n > 0 {
		overview.LatestConversionRate = overview.Points[n-1].ConversionRate
	}
	return overview
}

func trafficCountsByYear(t *dataset.Table) map[string]float64 {
	counts := make(map[string]float64)
	switch {
	case t.Has(dataset.ColSessionID):
		seen := make(map[string]map[string]struct{})
		for _, row := range t.Rows() {
			year := yearKey(row.Date)
			if seen[year] == nil {
				seen[year] = make(map[string]struct{})
			}
			seen[year][row.SessionID] = struct{}{}
		}
		for year, ids := range seen {
			counts[year] = float64(len(ids))
		}
	case t.Has(dataset.ColIPAddress):
		seen := make(map[string]map[string]struct{})
		for _, row := range t.Rows() {
			year := yearKey(row.Date)
			if seen[year] == nil {
				seen[year] = make(map[string]struct{})
			}
			seen[year][row.IPAddress] = struct{}{}
		}
		for year, ips := range seen {
			counts[year] = float64(len(ips))
		}
	default:
		for _, row := range t.Rows() {
			counts[yearKey(row.Date)]++
		}
	}
	return counts
}
