package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cac-insights/internal/config/configs"
	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/metrics"
	"cac-insights/internal/core/port"
	"cac-insights/internal/telemetry"
)

// Settings carries everything DashboardUseCase needs besides the
// repository.
type Settings struct {
	Dashboard       configs.Dashboard
	Source          string // dataset source name, used as a metrics label
	Recommendations []domain.RecommendationBlock
	Metrics         *telemetry.SnapshotMetrics
}

// DashboardUseCase computes dashboard snapshots from a dataset repository.
// It implements port.DashboardUseCase and holds no per-request state.
type DashboardUseCase struct {
	repo     port.DatasetRepository
	settings Settings
	now      func() time.Time
}

// NewDashboardUseCase creates a new usecase reading from repo.
func NewDashboardUseCase(repo port.DatasetRepository, settings Settings) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, settings: settings, now: time.Now}
}

// Snapshot loads both datasets and computes every dashboard aggregate. A
// failure to load either dataset aborts the snapshot with an error
// wrapping port.ErrLoad. Degenerate labels in computed mode do not fail
// the call: the model metrics come back with Source unavailable.
func (u *DashboardUseCase) Snapshot(ctx context.Context) (*domain.Dashboard, error) {
	start := u.now()
	campaigns, err := u.repo.LoadCampaigns(ctx)
	if err != nil {
		u.observe(telemetry.OutcomeLoadFailure, start)
		return nil, fmt.Errorf("%w: campaigns: %w", port.ErrLoad, err)
	}
	predictions, err := u.repo.LoadPredictions(ctx)
	if err != nil {
		u.observe(telemetry.OutcomeLoadFailure, start)
		return nil, fmt.Errorf("%w: predictions: %w", port.ErrLoad, err)
	}

	cfg := u.settings.Dashboard
	hist, err := metrics.ProbabilityHistogram(predictions.Records, cfg.HistogramBins)
	if err != nil {
		u.observe(telemetry.OutcomeError, start)
		return nil, fmt.Errorf("histogram: %w", err)
	}

	d := &domain.Dashboard{
		ID:                    uuid.NewString(),
		GeneratedAt:           start.UTC(),
		CACPerChannel:         metrics.CACPerChannel(campaigns),
		ConversionsPerChannel: metrics.ConversionsPerChannel(campaigns),
		Summary:               metrics.OverallCAC(campaigns, cfg.BaselineCAC, cfg.GuardZeroConversions),
		Histogram:             hist,
		Model:                 u.modelMetrics(predictions.Records),
		LabelSource:           predictions.LabelSource,
		Campaigns:             head(campaigns, cfg.PreviewRows),
		Predictions:           head(predictions.Records, cfg.PreviewRows),
		CampaignRows:          len(campaigns),
		PredictionRows:        len(predictions.Records),
		Recommendations:       u.settings.Recommendations,
	}
	u.observe(telemetry.OutcomeOK, start)
	return d, nil
}

// modelMetrics returns the configured placeholders in static mode. In
// computed mode it classifies predictions at the threshold and falls back
// to an unavailable state on degenerate labels.
func (u *DashboardUseCase) modelMetrics(predictions []domain.PredictionRecord) domain.ModelMetrics {
	cfg := u.settings.Dashboard
	if cfg.ModelMetrics != configs.ModelMetricsComputed {
		s := cfg.Static
		return metrics.StaticModelMetrics(s.Accuracy, s.Precision, s.Recall, s.ROCAUC)
	}

	m, err := metrics.ClassificationMetrics(predictions, cfg.Threshold)
	if errors.Is(err, metrics.ErrDegenerateLabels) {
		u.settings.Metrics.IncModelUnavailable()
		return domain.ModelMetrics{
			Source:    domain.MetricsUnavailable,
			Threshold: cfg.Threshold,
			Reason:    err.Error(),
		}
	}
	return m
}

func (u *DashboardUseCase) observe(outcome string, start time.Time) {
	u.settings.Metrics.Observe(u.settings.Source, outcome, u.now().Sub(start))
}

func head[T any](rows []T, n int) []T {
	n = max(0, min(n, len(rows)))
	out := make([]T, n)
	copy(out, rows)
	return out
}
