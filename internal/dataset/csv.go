package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/aisolutions-bi/dashboard-backend/pkg/errors"
	"go.uber.org/multierr"
)

// CSVSource reads the event log from a headered CSV file.
type CSVSource struct {
	Path string
}

func (s CSVSource) Read(ctx context.Context) (*Table, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "opening event log")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "reading event log header")
	}

	// Unknown headers are skipped; only schema columns count as present.
	columns := NewColumnSet()
	fields := make([]Column, len(header))
	for i, name := range header {
		col := Column(strings.ToLower(strings.TrimSpace(name)))
		if !Known(col) {
			continue
		}
		fields[i] = col
		columns.Add(col)
	}
	if !columns.Has(ColDate) {
		return nil, pkgerrors.New(pkgerrors.CodeDataSource, "event log has no date column")
	}

	var rows []Row
	var errs error
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "reading event log")
		}
		values, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		rec := make(record, len(values))
		for i, value := range values {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			rec[fields[i]] = value
		}

		row, err := decodeRow(rec)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		rows = append(rows, row)
	}

	if errs != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, errs, "event log contains malformed rows")
	}

	return NewTable(rows, columns), nil
}
