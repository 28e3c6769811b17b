package kpi

import (
	"sort"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
)

var productPopularityReq = Require(dataset.ColProductType)

// ProductPopularity counts events per product type, most popular first.
// The first item is the top product globally for the view.
func ProductPopularity(t *dataset.Table) Breakdown {
	if missing := productPopularityReq.Missing(t); missing != nil {
		return unavailableBreakdown(missing)
	}

	counts := make(map[string]float64)
	for _, row := range t.Rows() {
		counts[row.ProductType]++
	}

	items := make([]LabelValue, 0, len(counts))
	for _, product := range sortedKeys(counts) {
		items = append(items, LabelValue{Label: product, Value: counts[product]})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Value > items[j].Value })
	return okBreakdown(items)
}
