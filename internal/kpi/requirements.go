package kpi

import "github.com/aisolutions-bi/dashboard-backend/internal/dataset"

// Requirements is a metric's declared column contract. Checking it against
// a table is the single availability gate; metrics never probe columns
// ad hoc at their call sites.
type Requirements struct {
	columns []dataset.Column
}

func Require(cols ...dataset.Column) Requirements {
	return Requirements{columns: cols}
}

// Missing returns the declared columns the table lacks, in declaration
// order, or nil when the metric is computable.
func (r Requirements) Missing(t *dataset.Table) []dataset.Column {
	return t.Missing(r.columns...)
}

// Columns returns the declared contract.
func (r Requirements) Columns() []dataset.Column {
	return r.columns
}
