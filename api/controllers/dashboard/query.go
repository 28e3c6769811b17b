package dashboard

import (
	"net/http"
	"time"

	"github.com/aisolutions-bi/dashboard-backend/api/responses"
	"github.com/aisolutions-bi/dashboard-backend/api/validators"
	"github.com/aisolutions-bi/dashboard-backend/internal/dashboard"
)

const (
	panelExecutive = "executive"
	panelSales     = "sales"
	panelProduct   = "product"
)

type queryRequest struct {
	From   string   `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string   `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Panels []string `json:"panels" validate:"required,min=1,dive,oneof=executive sales product"`
}

type queryResponse struct {
	Executive *dashboard.ExecutivePanel `json:"executive,omitempty"`
	Sales     *dashboard.SalesPanel     `json:"sales,omitempty"`
	Product   *dashboard.ProductPanel   `json:"product,omitempty"`
}

// Query batches several panels into one response. The frontend uses it to
// refresh all visible tabs after the date picker changes.
func (c *Controller) Query(w http.ResponseWriter, r *http.Request) {
	ctx := c.logger.WithPanel(r.Context(), "query")

	var body queryRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}

	req := dashboard.Request{}
	if body.From != "" {
		req.Start, _ = time.Parse("2006-01-02", body.From)
	}
	if body.To != "" {
		req.End, _ = time.Parse("2006-01-02", body.To)
	}

	var resp queryResponse
	for _, panel := range body.Panels {
		var err error
		switch panel {
		case panelExecutive:
			resp.Executive, err = c.service.Executive(ctx, req)
		case panelSales:
			resp.Sales, err = c.service.Sales(ctx, req)
		case panelProduct:
			resp.Product, err = c.service.Product(ctx, req)
		}
		if err != nil {
			responses.WriteError(ctx, c.logger, w, err)
			return
		}
	}

	responses.WriteSuccess(w, resp)
}
