package controllers

import (
	"context"
	"net/http"

	"github.com/aisolutions-bi/dashboard-backend/api/responses"
	pkgerrors "github.com/aisolutions-bi/dashboard-backend/pkg/errors"
	"github.com/aisolutions-bi/dashboard-backend/pkg/logger"
)

// ReadinessChecker reports whether the service can answer dashboard queries.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type HealthController struct {
	logger  *logger.Logger
	checker ReadinessChecker
}

func NewHealthController(logg *logger.Logger, checker ReadinessChecker) *HealthController {
	return &HealthController{logger: logg, checker: checker}
}

// Live answers the liveness probe. It succeeds as long as the process serves.
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready answers the readiness probe. It fails until the event table has
// loaded, and keeps failing if the load failed.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	if err := c.checker.Ready(r.Context()); err != nil {
		responses.WriteError(r.Context(), c.logger, w,
			pkgerrors.Wrap(pkgerrors.CodeDataSource, err, "event table not ready"))
		return
	}
	responses.WriteSuccess(w, map[string]string{"status": "ready"})
}
