package dashboard

import (
	"net/http"

	"github.com/aisolutions-bi/dashboard-backend/api/responses"
	"github.com/aisolutions-bi/dashboard-backend/internal/dashboard"
	"github.com/aisolutions-bi/dashboard-backend/pkg/logger"
)

// Controller exposes the dashboard panels over HTTP.
type Controller struct {
	logger  *logger.Logger
	service dashboard.Service
}

func NewController(logg *logger.Logger, service dashboard.Service) *Controller {
	return &Controller{logger: logg, service: service}
}

// Range returns the table's date span for the frontend date picker.
func (c *Controller) Range(w http.ResponseWriter, r *http.Request) {
	info, err := c.service.Range(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logger, w, err)
		return
	}
	responses.WriteSuccess(w, info)
}

// Executive serves the executive summary panel.
func (c *Controller) Executive(w http.ResponseWriter, r *http.Request) {
	ctx := c.logger.WithPanel(r.Context(), "executive")

	req, err := parseWindow(r)
	if err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}

	panel, err := c.service.Executive(ctx, req)
	if err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}
	responses.WriteSuccess(w, panel)
}

// Sales serves the sales insights panel.
func (c *Controller) Sales(w http.ResponseWriter, r *http.Request) {
	ctx := c.logger.WithPanel(r.Context(), "sales")

	req, err := parseWindow(r)
	if err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}

	panel, err := c.service.Sales(ctx, req)
	if err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}
	responses.WriteSuccess(w, panel)
}

// Product serves the product insights panel.
func (c *Controller) Product(w http.ResponseWriter, r *http.Request) {
	ctx := c.logger.WithPanel(r.Context(), "product")

	req, err := parseWindow(r)
	if err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}

	panel, err := c.service.Product(ctx, req)
	if err != nil {
		responses.WriteError(ctx, c.logger, w, err)
		return
	}
	responses.WriteSuccess(w, panel)
}
