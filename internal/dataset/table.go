package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is one logged interaction or business event. Fields for columns the
// source did not carry hold their zero value; the owning Table's ColumnSet
// is the authority on which columns are actually present.
type Row struct {
	Date time.Time

	SessionID string
	IPAddress string

	DemoRequest        bool
	AIAssistantRequest bool
	ConversionStatus   bool

	Sales       decimal.Decimal
	ProductType string
	ProductID   string

	MarketingExpense decimal.Decimal
	NewCustomers     int64

	TotalCustomers   int64
	ChurnedCustomers int64
	MarketSize       int64

	CampaignID      string
	CampaignName    string
	CampaignSpend   decimal.Decimal
	CampaignRevenue decimal.Decimal

	DeliveryTimeDays float64
	DeliveryStatus   string

	JobTypeRequested string
	JobsPlaced       int64
}

// Table is the immutable event log plus the set of columns the source
// carried. Views produced by Between share the same ColumnSet; nothing
// mutates rows after load.
type Table struct {
	rows    []Row
	columns ColumnSet
}

func NewTable(rows []Row, columns ColumnSet) *Table {
	if columns == nil {
		columns = NewColumnSet()
	}
	columns.Add(ColDate)
	return &Table{rows: rows, columns: columns}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows exposes the backing slice for read-only iteration.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

func (t *Table) Has(c Column) bool {
	if t == nil {
		return false
	}
	return t.columns.Has(c)
}

// Missing returns the subset of cols absent from the table, in input order.
func (t *Table) Missing(cols ...Column) []Column {
	var missing []Column
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Columns returns a copy of the present column set.
func (t *Table) Columns() ColumnSet {
	if t == nil {
		return NewColumnSet()
	}
	return t.columns.Without()
}

// Span returns the minimum and maximum dates in the table. ok is false
// for an empty table.
func (t *Table) Span() (min, max time.Time, ok bool) {
	if t.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = t.rows[0].Date, t.rows[0].Date
	for _, row := range t.rows[1:] {
		if row.Date.Before(min) {
			min = row.Date
		}
		if row.Date.After(max) {
			max = row.Date
		}
	}
	return min, max, true
}
