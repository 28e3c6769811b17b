package dataset

import "time"

// Between returns the subsequence of rows with start <= date <= end,
// preserving the original order. A zero start or end leaves that side
// unbounded; both zero returns the full table unchanged, which is the
// defined fallback when the caller supplied fewer than two endpoints.
func (t *Table) Between(start, end time.Time) *Table {
	if t == nil {
		return nil
	}
	if start.IsZero() && end.IsZero() {
		return t
	}

	rows := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if !start.IsZero() && row.Date.Before(start) {
			continue
		}
		if !end.IsZero() && row.Date.After(end) {
			continue
		}
		rows = append(rows, row)
	}
	return &Table{rows: rows, columns: t.columns}
}

// ClampRange narrows the requested interval to the table span, mirroring
// the date picker's bounds. Zero endpoints widen to the span itself.
func (t *Table) ClampRange(start, end time.Time) (time.Time, time.Time) {
	min, max, ok := t.Span()
	if !ok {
		return start, end
	}
	if start.IsZero() || start.Before(min) {
		start = min
	}
	if end.IsZero() || end.After(max) {
		end = max
	}
	return start, end
}
