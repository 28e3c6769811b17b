package dashboard

import (
	"net/http"

	"github.com/aisolutions-bi/dashboard-backend/api/validators"
	"github.com/aisolutions-bi/dashboard-backend/internal/dashboard"
)

// parseWindow extracts the optional from/to query parameters. Missing
// parameters leave the corresponding endpoint zero, which the service
// treats as the full table span.
func parseWindow(r *http.Request) (dashboard.Request, error) {
	from, to, err := validators.DateRangeParams(r.URL.Query())
	if err != nil {
		return dashboard.Request{}, err
	}
	return dashboard.Request{Start: from, End: to}, nil
}
