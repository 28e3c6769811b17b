package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	pkgerrors "github.com/aisolutions-bi/dashboard-backend/pkg/errors"
	"go.uber.org/multierr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteSource reads the event log from a table in a SQLite file. The file
// is opened read-only, scanned once, and closed; it is a source format,
// not a live store.
type SQLiteSource struct {
	Path  string
	Table string
}

func (s SQLiteSource) Read(ctx context.Context) (*Table, error) {
	if s.Table == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDataSource, "sqlite source requires a table name")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open("file:"+s.Path+"?mode=ro"), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "opening event log database")
	}
	defer func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	var raw []map[string]any
	if err := conn.WithContext(ctx).Table(s.Table).Find(&raw).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "reading event log table")
	}

	columns, err := s.tableColumns(ctx, conn)
	if err != nil {
		return nil, err
	}
	if !columns.Has(ColDate) {
		return nil, pkgerrors.New(pkgerrors.CodeDataSource, "event log has no date column")
	}

	var rows []Row
	var errs error
	for i, values := range raw {
		rec := make(record, len(values))
		for name, value := range values {
			col := Column(strings.ToLower(name))
			if !Known(col) {
				continue
			}
			rec[col] = value
		}
		row, err := decodeRow(rec)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		rows = append(rows, row)
	}

	if errs != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, errs, "event log contains malformed rows")
	}

	return NewTable(rows, columns), nil
}

func (s SQLiteSource) tableColumns(ctx context.Context, conn *gorm.DB) (ColumnSet, error) {
	types, err := conn.WithContext(ctx).Migrator().ColumnTypes(s.Table)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "inspecting event log schema")
	}
	columns := NewColumnSet()
	for _, ct := range types {
		col := Column(strings.ToLower(ct.Name()))
		if Known(col) {
			columns.Add(col)
		}
	}
	return columns, nil
}
