package port

import (
	"context"
	"errors"

	"cac-insights/internal/core/domain"
)

// ErrLoad wraps any failure to read either dataset. It ends the session:
// nothing else is computed and a single error is shown.
var ErrLoad = errors.New("failed to load data")

// DashboardUseCase defines the business operations exposed by the CAC
// dashboard. It is the primary port into the application domain.
type DashboardUseCase interface {
	// Snapshot loads both datasets and computes every aggregate shown on
	// the dashboard. Errors from the sources are wrapped in ErrLoad.
	// Degenerate labels never fail the call; the model metrics are marked
	// unavailable instead.
	Snapshot(ctx context.Context) (*domain.Dashboard, error)
}
