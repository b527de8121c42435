package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/metrics"
)

func snapshot(t *testing.T, guard bool, campaigns []domain.CampaignRecord) *domain.Dashboard {
	t.Helper()
	hist, err := metrics.ProbabilityHistogram([]domain.PredictionRecord{{ConversionProbability: 1}}, 4)
	require.NoError(t, err)
	return &domain.Dashboard{
		ID:                    "r-1",
		GeneratedAt:           time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
		CACPerChannel:         metrics.CACPerChannel(campaigns),
		ConversionsPerChannel: metrics.ConversionsPerChannel(campaigns),
		Summary:               metrics.OverallCAC(campaigns, 250, guard),
		Histogram:             hist,
		Model:                 domain.ModelMetrics{Source: domain.MetricsUnavailable, Reason: "degenerate"},
		Recommendations:       []domain.RecommendationBlock{{Title: "Opportunities", Items: []string{"shift budget"}}},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(snapshot(t, true, []domain.CampaignRecord{
		{Channel: "A", CostTotal: 100, Conversions: 1},
		{Channel: "B", CostTotal: 200, Conversions: 3},
	}))
	assert.Contains(t, md, "# CAC Report (2024-01-02 03:04 UTC)")
	assert.Contains(t, md, "**Overall CAC:** R$ 75.00 (baseline R$ 250.00)")
	assert.Contains(t, md, "**Reduction:** 70.0%")
	assert.Contains(t, md, "**Estimated savings:** R$ 700.00")
	assert.Contains(t, md, "| B | R$ 66.67 |")
	assert.Contains(t, md, "- [0.75, 1.00]: 1")
	assert.Contains(t, md, "Unavailable: degenerate")
	assert.Contains(t, md, "- shift budget")
}

func TestMarkdownUndefined(t *testing.T) {
	md := Markdown(snapshot(t, false, []domain.CampaignRecord{{Channel: "A", CostTotal: 100}}))
	assert.Contains(t, md, "undefined (no conversions)")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snapshot(t, false, []domain.CampaignRecord{{Channel: "A", CostTotal: 100}}), FormatJSON))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "r-1", out["id"])
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, &domain.Dashboard{}, "pdf"))
}
