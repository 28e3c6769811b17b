package dataset

import "sort"

// Column names a field of the event log. The date column is the only one
// required by every source; the rest are optional and gate which metrics
// are computable.
type Column string

const (
	ColDate               Column = "date"
	ColSessionID          Column = "session_id"
	ColIPAddress          Column = "ip_address"
	ColDemoRequest        Column = "demo_request"
	ColAIAssistantRequest Column = "ai_assistant_request"
	ColConversionStatus   Column = "conversion_status"
	ColSales              Column = "sales"
	ColProductType        Column = "product_type"
	ColProductID          Column = "product_id"
	ColMarketingExpense   Column = "marketing_expense"
	ColNewCustomers       Column = "new_customers"
	ColTotalCustomers     Column = "total_customers"
	ColChurnedCustomers   Column = "churned_customers"
	ColMarketSize         Column = "market_size"
	ColCampaignID         Column = "campaign_id"
	ColCampaignName       Column = "campaign_name"
	ColCampaignSpend      Column = "campaign_spend"
	ColCampaignRevenue    Column = "campaign_revenue"
	ColDeliveryTimeDays   Column = "delivery_time_days"
	ColDeliveryStatus     Column = "delivery_status"
	ColJobTypeRequested   Column = "job_type_requested"
	ColJobsPlaced         Column = "jobs_placed"
)

var knownColumns = map[Column]struct{}{
	ColDate:               {},
	ColSessionID:          {},
	ColIPAddress:          {},
	ColDemoRequest:        {},
	ColAIAssistantRequest: {},
	ColConversionStatus:   {},
	ColSales:              {},
	ColProductType:        {},
	ColProductID:          {},
	ColMarketingExpense:   {},
	ColNewCustomers:       {},
	ColTotalCustomers:     {},
	ColChurnedCustomers:   {},
	ColMarketSize:         {},
	ColCampaignID:         {},
	ColCampaignName:       {},
	ColCampaignSpend:      {},
	ColCampaignRevenue:    {},
	ColDeliveryTimeDays:   {},
	ColDeliveryStatus:     {},
	ColJobTypeRequested:   {},
	ColJobsPlaced:         {},
}

// Known reports whether the column is part of the event log schema.
// Sources skip columns they do not recognize.
func Known(c Column) bool {
	_, ok := knownColumns[c]
	return ok
}

// ColumnSet tracks which optional columns a source actually carried.
type ColumnSet map[Column]struct{}

func NewColumnSet(cols ...Column) ColumnSet {
	set := make(ColumnSet, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	return set
}

func (s ColumnSet) Has(c Column) bool {
	_, ok := s[c]
	return ok
}

func (s ColumnSet) Add(c Column) {
	s[c] = struct{}{}
}

// Without returns a copy of the set with the given columns removed.
func (s ColumnSet) Without(cols ...Column) ColumnSet {
	out := make(ColumnSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	for _, c := range cols {
		delete(out, c)
	}
	return out
}

// Sorted returns the columns in lexicographic order.
func (s ColumnSet) Sorted() []Column {
	out := make([]Column, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
