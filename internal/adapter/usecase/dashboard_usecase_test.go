package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cac-insights/internal/config/configs"
	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/metrics"
	"cac-insights/internal/core/port"
	"cac-insights/internal/core/port/mocks"
	"cac-insights/internal/telemetry"
)

func defaultDashboard() configs.Dashboard {
	return configs.Dashboard{
		HistogramBins:        20,
		Threshold:            0.5,
		PreviewRows:          2,
		BaselineCAC:          250,
		GuardZeroConversions: true,
		ModelMetrics:         configs.ModelMetricsStatic,
		Static: configs.StaticMetrics{
			Accuracy: 0.86, Precision: 0.82, Recall: 0.79, ROCAUC: 0.87,
		},
	}
}

var campaigns = []domain.CampaignRecord{
	{Channel: "A", CostTotal: 100, Conversions: 2},
	{Channel: "A", CostTotal: 50, Conversions: 0},
	{Channel: "B", CostTotal: 300, Conversions: 3},
}

func predictionSet(source domain.LabelSource, pairs ...float64) domain.PredictionSet {
	set := domain.PredictionSet{LabelSource: source}
	for i := 0; i+1 < len(pairs); i += 2 {
		set.Records = append(set.Records, domain.PredictionRecord{
			ConversionProbability: pairs[i],
			Converted:             int(pairs[i+1]),
		})
	}
	return set
}

// TestSnapshotStatic checks the aggregates and the placeholder model metrics.
func TestSnapshotStatic(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).Return(campaigns, nil)
	repo.EXPECT().LoadPredictions(mock.Anything).
		Return(predictionSet(domain.LabelDefaulted, 0.1, 0, 0.55, 0, 0.97, 0), nil)

	blocks := []domain.RecommendationBlock{{Key: "opportunities"}}
	svc := NewDashboardUseCase(repo, Settings{Dashboard: defaultDashboard(), Source: "csv", Recommendations: blocks})

	d, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, []domain.ChannelValue{{Channel: "A", Value: 50}, {Channel: "B", Value: 100}}, d.CACPerChannel)
	assert.Equal(t, []domain.ChannelCount{{Channel: "A", Count: 2}, {Channel: "B", Count: 3}}, d.ConversionsPerChannel)
	assert.Equal(t, 90.0, d.Summary.OverallCAC)
	assert.Equal(t, int64(3), d.Histogram.Total())
	assert.Equal(t, domain.MetricsStatic, d.Model.Source)
	assert.Equal(t, 0.86, d.Model.Accuracy)
	assert.Equal(t, domain.LabelDefaulted, d.LabelSource)
	assert.Len(t, d.Campaigns, 2)
	assert.Len(t, d.Predictions, 2)
	assert.Equal(t, 3, d.CampaignRows)
	assert.Equal(t, 3, d.PredictionRows)
	assert.Equal(t, blocks, d.Recommendations)
}

func TestSnapshotComputedMetrics(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).Return(campaigns, nil)
	repo.EXPECT().LoadPredictions(mock.Anything).
		Return(predictionSet(domain.LabelRealConverted, 0.9, 1, 0.2, 0, 0.7, 0, 0.3, 1), nil)

	cfg := defaultDashboard()
	cfg.ModelMetrics = configs.ModelMetricsComputed
	svc := NewDashboardUseCase(repo, Settings{Dashboard: cfg})

	d, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MetricsComputed, d.Model.Source)
	assert.InDelta(t, 0.5, d.Model.Accuracy, 1e-9)
	assert.InDelta(t, 0.5, d.Model.Precision, 1e-9)
	assert.InDelta(t, 0.5, d.Model.Recall, 1e-9)
}

// TestSnapshotDegenerateLabels ensures missing ground truth never fails the
// snapshot in computed mode.
func TestSnapshotDegenerateLabels(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).Return(campaigns, nil)
	repo.EXPECT().LoadPredictions(mock.Anything).
		Return(predictionSet(domain.LabelDefaulted, 0.9, 0, 0.2, 0), nil)

	reg := prometheus.NewRegistry()
	m := telemetry.NewSnapshotMetrics(reg)
	cfg := defaultDashboard()
	cfg.ModelMetrics = configs.ModelMetricsComputed
	svc := NewDashboardUseCase(repo, Settings{Dashboard: cfg, Source: "csv", Metrics: m})

	d, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MetricsUnavailable, d.Model.Source)
	assert.False(t, d.Model.Available())
	assert.NotEmpty(t, d.Model.Reason)

	n, err := testutil.GatherAndCount(reg, "dashboard_model_metrics_unavailable_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSnapshotCampaignLoadFailure(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).Return(nil, os.ErrNotExist)

	svc := NewDashboardUseCase(repo, Settings{Dashboard: defaultDashboard()})
	d, err := svc.Snapshot(context.Background())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, port.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestSnapshotPredictionLoadFailure ensures nothing is computed once the
// second dataset fails.
func TestSnapshotPredictionLoadFailure(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).Return(campaigns, nil)
	repo.EXPECT().LoadPredictions(mock.Anything).Return(domain.PredictionSet{}, errors.New("malformed"))

	reg := prometheus.NewRegistry()
	svc := NewDashboardUseCase(repo, Settings{
		Dashboard: defaultDashboard(),
		Source:    "csv",
		Metrics:   telemetry.NewSnapshotMetrics(reg),
	})
	d, err := svc.Snapshot(context.Background())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, port.ErrLoad)

	expected := `
# HELP dashboard_snapshots_total Dashboard snapshots by outcome.
# TYPE dashboard_snapshots_total counter
dashboard_snapshots_total{outcome="load_failure",source="csv"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "dashboard_snapshots_total"))
}

func TestSnapshotUnguardedZeroConversions(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).
		Return([]domain.CampaignRecord{{Channel: "A", CostTotal: 10, Conversions: 0}}, nil)
	repo.EXPECT().LoadPredictions(mock.Anything).Return(domain.PredictionSet{}, nil)

	cfg := defaultDashboard()
	cfg.GuardZeroConversions = false
	svc := NewDashboardUseCase(repo, Settings{Dashboard: cfg})

	d, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, d.Summary.Defined)
	// per-row guard still applies to the channel view
	assert.Equal(t, []domain.ChannelValue{{Channel: "A", Value: 10}}, d.CACPerChannel)
	assert.Empty(t, d.Predictions)
}

func TestSnapshotHistogramFailureIsCounted(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	repo.EXPECT().LoadCampaigns(mock.Anything).Return(campaigns, nil)
	repo.EXPECT().LoadPredictions(mock.Anything).Return(predictionSet(domain.LabelConverted, 0.4, 1), nil)

	reg := prometheus.NewRegistry()
	cfg := defaultDashboard()
	cfg.HistogramBins = 0
	svc := NewDashboardUseCase(repo, Settings{
		Dashboard: cfg,
		Source:    "csv",
		Metrics:   telemetry.NewSnapshotMetrics(reg),
	})
	d, err := svc.Snapshot(context.Background())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, metrics.ErrInvalidBins)

	expected := `
# HELP dashboard_snapshots_total Dashboard snapshots by outcome.
# TYPE dashboard_snapshots_total counter
dashboard_snapshots_total{outcome="error",source="csv"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "dashboard_snapshots_total"))
}
