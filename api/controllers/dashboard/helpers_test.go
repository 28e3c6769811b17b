package dashboard

import (
	"context"
	"io"
	"testing"

	"github.com/aisolutions-bi/dashboard-backend/internal/dashboard"
	"github.com/aisolutions-bi/dashboard-backend/internal/kpi"
	"github.com/aisolutions-bi/dashboard-backend/pkg/logger"
	"github.com/rs/zerolog"
)

// stubService lets each test pin down exactly what the controller receives.
type stubService struct {
	rangeInfo *dashboard.RangeInfo
	executive *dashboard.ExecutivePanel
	sales     *dashboard.SalesPanel
	product   *dashboard.ProductPanel
	err       error

	lastReq dashboard.Request
	calls   []string
}

func (s *stubService) Range(ctx context.Context) (*dashboard.RangeInfo, error) {
	s.calls = append(s.calls, "range")
	return s.rangeInfo, s.err
}

func (s *stubService) Executive(ctx context.Context, req dashboard.Request) (*dashboard.ExecutivePanel, error) {
	s.calls = append(s.calls, "executive")
	s.lastReq = req
	return s.executive, s.err
}

func (s *stubService) Sales(ctx context.Context, req dashboard.Request) (*dashboard.SalesPanel, error) {
	s.calls = append(s.calls, "sales")
	s.lastReq = req
	return s.sales, s.err
}

func (s *stubService) Product(ctx context.Context, req dashboard.Request) (*dashboard.ProductPanel, error) {
	s.calls = append(s.calls, "product")
	s.lastReq = req
	return s.product, s.err
}

func quietLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.New(logger.Options{
		ServiceName: "test",
		Level:       zerolog.Disabled,
		Output:      io.Discard,
	})
}

func okScalar(v float64) kpi.Scalar {
	return kpi.Scalar{Status: kpi.StatusOK, Value: v}
}
