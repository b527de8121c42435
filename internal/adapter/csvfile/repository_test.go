package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cac-insights/internal/config/configs"
	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/port"
)

func writeFiles(t *testing.T, campaigns, predictions string) *Repository {
	t.Helper()
	dir := t.TempDir()
	cPath := filepath.Join(dir, "dados_campanhas.csv")
	pPath := filepath.Join(dir, "previsoes_modelo.csv")
	require.NoError(t, os.WriteFile(cPath, []byte(campaigns), 0o600))
	require.NoError(t, os.WriteFile(pPath, []byte(predictions), 0o600))
	return NewRepository(configs.Dataset{CampaignsPath: cPath, PredictionsPath: pPath, Delimiter: ","})
}

func TestLoadCampaigns(t *testing.T) {
	repo := writeFiles(t,
		"data,canal,impressoes,custo_total,conversoes\n"+
			"2024-01-01,Google Ads,1000,100.5,2\n"+
			"2024-01-01,LinkedIn,800,50,0\n"+
			"2024-01-02,Meta Ads,900,300,3.0\n",
		"probabilidade_conversao\n0.5\n")

	got, err := repo.LoadCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CampaignRecord{
		{Channel: "Google Ads", CostTotal: 100.5, Conversions: 2},
		{Channel: "LinkedIn", CostTotal: 50, Conversions: 0},
		{Channel: "Meta Ads", CostTotal: 300, Conversions: 3},
	}, got)
}

func TestLoadCampaignsMissingColumn(t *testing.T) {
	repo := writeFiles(t, "canal,custo_total\nA,10\n", "probabilidade_conversao\n0.5\n")
	_, err := repo.LoadCampaigns(context.Background())
	require.ErrorIs(t, err, port.ErrMissingColumn)
	assert.Contains(t, err.Error(), "conversoes")
}

func TestLoadCampaignsMalformed(t *testing.T) {
	repo := writeFiles(t, "canal,custo_total,conversoes\nA,ten,1\n", "probabilidade_conversao\n0.5\n")
	_, err := repo.LoadCampaigns(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadCampaignsMissingFile(t *testing.T) {
	repo := NewRepository(configs.Dataset{CampaignsPath: filepath.Join(t.TempDir(), "nope.csv")})
	_, err := repo.LoadCampaigns(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPredictionsWithoutGroundTruth(t *testing.T) {
	repo := writeFiles(t, "canal,custo_total,conversoes\n",
		"canal,probabilidade_conversao\nA,0.2\nB,0.9\nA,0.7\n")

	set, err := repo.LoadPredictions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.LabelDefaulted, set.LabelSource)
	require.Len(t, set.Records, 3)
	for _, r := range set.Records {
		assert.Equal(t, 0, r.Converted)
	}
	assert.Equal(t, "B", set.Records[1].Channel)
}

func TestLoadPredictionsCopiesRealConverted(t *testing.T) {
	repo := writeFiles(t, "canal,custo_total,conversoes\n",
		"probabilidade_conversao,real_converteu\n0.8,1\n0.1,0\n0.6,1\n")

	set, err := repo.LoadPredictions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.LabelRealConverted, set.LabelSource)

	labels := make([]int, len(set.Records))
	for i, r := range set.Records {
		labels[i] = r.Converted
	}
	assert.Equal(t, []int{1, 0, 1}, labels)
	assert.Empty(t, set.Records[0].Channel)
}

func TestLoadPredictionsPrefersConverted(t *testing.T) {
	repo := writeFiles(t, "canal,custo_total,conversoes\n",
		"probabilidade_conversao,converteu,real_converteu\n0.8,0,1\n0.1,True,0\n")

	set, err := repo.LoadPredictions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.LabelConverted, set.LabelSource)
	assert.Equal(t, 0, set.Records[0].Converted)
	assert.Equal(t, 1, set.Records[1].Converted)
}

func TestLoadPredictionsBadLabel(t *testing.T) {
	repo := writeFiles(t, "canal,custo_total,conversoes\n",
		"probabilidade_conversao,converteu\n0.8,maybe\n")
	_, err := repo.LoadPredictions(context.Background())
	assert.Error(t, err)
}

func TestSemicolonDelimiter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffcanal;custo_total;conversoes\nA;10;1\n"), 0o600))
	repo := NewRepository(configs.Dataset{CampaignsPath: path, Delimiter: ";"})

	got, err := repo.LoadCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CampaignRecord{{Channel: "A", CostTotal: 10, Conversions: 1}}, got)
}

func TestParseCount(t *testing.T) {
	n, err := parseCount("4.0")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = parseCount("4.5")
	assert.Error(t, err)
	_, err = parseCount("")
	assert.Error(t, err)
}

func TestLoadRejectsNonFinite(t *testing.T) {
	for _, cell := range []string{"NaN", "Inf", "-Inf", "+inf"} {
		t.Run(cell, func(t *testing.T) {
			repo := writeFiles(t,
				"canal,custo_total,conversoes\nA,"+cell+",1\n",
				"probabilidade_conversao\n"+cell+"\n")

			_, err := repo.LoadCampaigns(context.Background())
			assert.ErrorContains(t, err, "not a finite number")
			_, err = repo.LoadPredictions(context.Background())
			assert.ErrorContains(t, err, "not a finite number")
		})
	}
}
