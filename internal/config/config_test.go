package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cac-insights/internal/config/configs"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.SourceCSV, cfg.Dataset.Source)
	assert.Equal(t, "dados_campanhas.csv", cfg.Dataset.CampaignsPath)
	assert.Equal(t, "previsoes_modelo.csv", cfg.Dataset.PredictionsPath)
	assert.Equal(t, []string{"dashboard", "model", "recommendations", "data"}, cfg.Dashboard.Tabs)
	assert.Equal(t, 20, cfg.Dashboard.HistogramBins)
	assert.Equal(t, 0.5, cfg.Dashboard.Threshold)
	assert.Equal(t, 250.0, cfg.Dashboard.BaselineCAC)
	assert.True(t, cfg.Dashboard.GuardZeroConversions)
	assert.Equal(t, configs.ModelMetricsStatic, cfg.Dashboard.ModelMetrics)
	assert.Equal(t, 0.86, cfg.Dashboard.Static.Accuracy)
	assert.Equal(t, 0.87, cfg.Dashboard.Static.ROCAUC)
	assert.Equal(t, "campaign_records", cfg.Psql.CampaignsTable)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"DATASET_SOURCE":                   "postgres",
		"DASHBOARD_TABS":                   "dashboard,data",
		"DASHBOARD_MODEL_METRICS":          "computed",
		"DASHBOARD_GUARD_ZERO_CONVERSIONS": "false",
		"DASHBOARD_STATIC_ACCURACY":        "0.9",
		"LOG_FORMAT":                       "json",
		"HTTP_CORS_ORIGINS":                "http://localhost:5173,https://cac.example",
	}})
	require.NoError(t, err)

	assert.Equal(t, configs.SourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, []string{"dashboard", "data"}, cfg.Dashboard.Tabs)
	assert.Equal(t, configs.ModelMetricsComputed, cfg.Dashboard.ModelMetrics)
	assert.False(t, cfg.Dashboard.GuardZeroConversions)
	assert.Equal(t, 0.9, cfg.Dashboard.Static.Accuracy)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, []string{"http://localhost:5173", "https://cac.example"}, cfg.HTTP.CORSOrigins)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown source":  {"DATASET_SOURCE": "parquet"},
		"unknown tab":     {"DASHBOARD_TABS": "dashboard,footer"},
		"zero bins":       {"DASHBOARD_HISTOGRAM_BINS": "0"},
		"threshold range": {"DASHBOARD_THRESHOLD": "1.5"},
		"metrics mode":    {"DASHBOARD_MODEL_METRICS": "trained"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(env.Options{Environment: vars})
			assert.Error(t, err)
		})
	}
}
