package kpi

import (
	"testing"
	"time"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/shopspring/decimal"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", value, err)
	}
	return parsed
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newView(rows []dataset.Row, cols ...dataset.Column) *dataset.Table {
	return dataset.NewTable(rows, dataset.NewColumnSet(cols...))
}
