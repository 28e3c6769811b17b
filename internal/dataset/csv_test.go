package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/aisolutions-bi/dashboard-backend/pkg/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCSVSourceReadsTypedRows(t *testing.T) {
	path := writeCSV(t, `date,session_id,conversion_status,sales,product_type
2023-01-01,s1,1,100.50,Chatbot
2023-01-02,s2,0,49.50,Assistant
`)

	table, err := CSVSource{Path: path}.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	for _, col := range []Column{ColDate, ColSessionID, ColConversionStatus, ColSales, ColProductType} {
		if !table.Has(col) {
			t.Fatalf("expected column %s to be present", col)
		}
	}
	if table.Has(ColCampaignID) {
		t.Fatal("campaign_id should not be present")
	}

	rows := table.Rows()
	if !rows[0].ConversionStatus || rows[1].ConversionStatus {
		t.Fatalf("unexpected conversion flags: %+v", rows)
	}
	if rows[0].Sales.String() != "100.5" {
		t.Fatalf("unexpected sales amount %s", rows[0].Sales)
	}
	if rows[0].Date.Format("2006-01-02") != "2023-01-01" {
		t.Fatalf("unexpected date %v", rows[0].Date)
	}
}

func TestCSVSourceRequiresDateColumn(t *testing.T) {
	path := writeCSV(t, "session_id,sales\ns1,10\n")

	_, err := CSVSource{Path: path}.Read(context.Background())
	if err == nil {
		t.Fatal("expected error for missing date column")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDataSource {
		t.Fatalf("expected data source error, got %v", err)
	}
}

func TestCSVSourceFailsOnMalformedDate(t *testing.T) {
	path := writeCSV(t, "date,sales\n2023-01-01,10\nnot-a-date,20\n")

	_, err := CSVSource{Path: path}.Read(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestCSVSourceFailsOnMissingFile(t *testing.T) {
	_, err := CSVSource{Path: filepath.Join(t.TempDir(), "nope.csv")}.Read(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDataSource {
		t.Fatalf("expected data source error, got %v", err)
	}
}

func TestCSVSourceIgnoresUnknownHeaders(t *testing.T) {
	path := writeCSV(t, "date,referrer,sales\n2023-01-01,google,10\n")

	table, err := CSVSource{Path: path}.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(table.Columns()); got != 2 {
		t.Fatalf("expected 2 known columns, got %d (%v)", got, table.Columns().Sorted())
	}
}

func TestCSVSourceTreatsEmptyCellsAsZero(t *testing.T) {
	path := writeCSV(t, "date,sales,new_customers\n2023-01-01,,\n")

	table, err := CSVSource{Path: path}.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := table.Rows()[0]
	if !row.Sales.IsZero() || row.NewCustomers != 0 {
		t.Fatalf("expected zero values for empty cells, got %+v", row)
	}
}
