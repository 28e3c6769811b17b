package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// record is one raw source row before typing. CSV sources supply strings;
// the SQLite driver supplies whatever Go value it scanned.
type record map[Column]any

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// decodeRow types a raw record according to the columns the source carried.
// Field errors are accumulated so a bad row reports every problem at once.
func decodeRow(rec record) (Row, error) {
	var row Row
	var errs error

	date, err := asDate(rec[ColDate])
	if err != nil {
		errs = multierr.Append(errs, fieldError(ColDate, err))
	}
	row.Date = date

	for col, val := range rec {
		var err error
		switch col {
		case ColDate:
			// handled above
		case ColSessionID:
			row.SessionID = asString(val)
		case ColIPAddress:
			row.IPAddress = asString(val)
		case ColDemoRequest:
			row.DemoRequest, err = asBool(val)
		case ColAIAssistantRequest:
			row.AIAssistantRequest, err = asBool(val)
		case ColConversionStatus:
			row.ConversionStatus, err = asBool(val)
		case ColSales:
			row.Sales, err = asDecimal(val)
		case ColProductType:
			row.ProductType = asString(val)
		case ColProductID:
			row.ProductID = asString(val)
		case ColMarketingExpense:
			row.MarketingExpense, err = asDecimal(val)
		case ColNewCustomers:
			row.NewCustomers, err = asInt(val)
		case ColTotalCustomers:
			row.TotalCustomers, err = asInt(val)
		case ColChurnedCustomers:
			row.ChurnedCustomers, err = asInt(val)
		case ColMarketSize:
			row.MarketSize, err = asInt(val)
		case ColCampaignID:
			row.CampaignID = asString(val)
		case ColCampaignName:
			row.CampaignName = asString(val)
		case ColCampaignSpend:
			row.CampaignSpend, err = asDecimal(val)
		case ColCampaignRevenue:
			row.CampaignRevenue, err = asDecimal(val)
		case ColDeliveryTimeDays:
			row.DeliveryTimeDays, err = asFloat(val)
		case ColDeliveryStatus:
			row.DeliveryStatus = asString(val)
		case ColJobTypeRequested:
			row.JobTypeRequested = asString(val)
		case ColJobsPlaced:
			row.JobsPlaced, err = asInt(val)
		}
		if err != nil {
			errs = multierr.Append(errs, fieldError(col, err))
		}
	}

	return row, errs
}

func fieldError(col Column, err error) error {
	return fmt.Errorf("column %s: %w", col, err)
}

func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []byte:
		return strings.TrimSpace(string(val))
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

func asBool(v any) (bool, error) {
	switch val := v.(type) {
	case nil:
		return false, nil
	case bool:
		return val, nil
	case int64:
		return val != 0, nil
	case float64:
		return val != 0, nil
	}
	s := asString(v)
	switch strings.ToLower(s) {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, fmt.Errorf("invalid flag value %q", s)
}

func asInt(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return val, nil
	case float64:
		return int64(val), nil
	}
	s := asString(v)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

func asFloat(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	}
	s := asString(v)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

func asDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case int64:
		return decimal.NewFromInt(val), nil
	case float64:
		return decimal.NewFromFloat(val), nil
	}
	s := asString(v)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

func asDate(v any) (time.Time, error) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("missing date")
	case time.Time:
		return val.UTC(), nil
	}
	s := asString(v)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}
