package dashboard

import (
	"context"

	"github.com/aisolutions-bi/dashboard-backend/internal/dataset"
	"github.com/aisolutions-bi/dashboard-backend/internal/kpi"
	pkgerrors "github.com/aisolutions-bi/dashboard-backend/pkg/errors"
)

// TableProvider yields the loaded event table.
type TableProvider interface {
	Load(ctx context.Context) (*dataset.Table, error)
}

// Service computes the dashboard panels over a date-filtered view.
type Service interface {
	Range(ctx context.Context) (*RangeInfo, error)
	Executive(ctx context.Context, req Request) (*ExecutivePanel, error)
	Sales(ctx context.Context, req Request) (*SalesPanel, error)
	Product(ctx context.Context, req Request) (*ProductPanel, error)
}

type service struct {
	tables TableProvider
}

func NewService(tables TableProvider) Service {
	return &service{tables: tables}
}

func (s *service) Range(ctx context.Context) (*RangeInfo, error) {
	table, err := s.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	info := &RangeInfo{Rows: table.Len()}
	if min, max, ok := table.Span(); ok {
		info.MinDate = min.Format("2006-01-02")
		info.MaxDate = max.Format("2006-01-02")
	}
	return info, nil
}

func (s *service) Executive(ctx context.Context, req Request) (*ExecutivePanel, error) {
	view, err := s.view(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ExecutivePanel{
		Traffic: kpi.TrafficByYear(view),
		AcquisitionCost: MetricWithTrend{
			Overall: kpi.AcquisitionCost(view),
			Monthly: kpi.MonthlyAcquisitionCost(view),
		},
		Retention: MetricWithTrend{
			Overall: kpi.RetentionRate(view),
			Monthly: kpi.MonthlyRetention(view),
		},
		Penetration: MetricWithTrend{
			Overall: kpi.MarketPenetration(view),
			Monthly: kpi.MonthlyPenetration(view),
		},
	}, nil
}

func (s *service) Sales(ctx context.Context, req Request) (*SalesPanel, error) {
	view, err := s.view(ctx, req)
	if err != nil {
		return nil, err
	}
	return &SalesPanel{
		Totals: SalesTotals{
			TotalSales:     kpi.TotalSales(view),
			UniqueSessions: kpi.UniqueSessions(view),
			UniqueVisitors: kpi.UniqueVisitors(view),
			ConversionRate: kpi.ConversionRate(view),
			JobSuccessRate: kpi.JobSuccessRate(view),
		},
		QuarterlySales:    kpi.QuarterlySalesByProduct(view),
		DailySales:        kpi.DailySalesByProduct(view),
		ChannelConversion: kpi.ConversionByChannel(view),
		MonthlyGrowth:     kpi.MonthlySalesGrowth(view),
		CampaignROI:       kpi.CampaignROI(view),
	}, nil
}

func (s *service) Product(ctx context.Context, req Request) (*ProductPanel, error) {
	view, err := s.view(ctx, req)
	if err != nil {
		return nil, err
	}
	panel := &ProductPanel{
		Popularity:          kpi.ProductPopularity(view),
		ConversionByProduct: kpi.ConversionByProduct(view),
		Delivery:            kpi.Delivery(view),
	}
	if items := panel.Popularity.Items; len(items) > 0 {
		panel.TopProduct = items[0].Label
	}
	return panel, nil
}

// view loads the table and applies the requested window. A request with
// fewer than two endpoints returns the full table; a complete request is
// clamped to the table span before filtering.
func (s *service) view(ctx context.Context, req Request) (*dataset.Table, error) {
	table, err := s.tables.Load(ctx)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "loading event table")
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return table, nil
	}

	start, end := table.ClampRange(req.Start, req.End)
	return table.Between(start, end), nil
}
