// Package csvfile reads the campaign and prediction datasets from CSV files.
package csvfile

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"cac-insights/internal/config/configs"
	"cac-insights/internal/core/domain"
)

// Repository implements port.DatasetRepository over two CSV files. The
// files are opened and parsed on every call.
type Repository struct {
	campaignsPath   string
	predictionsPath string
	comma           rune
}

// NewRepository returns a repository reading the files named in cfg.
func NewRepository(cfg configs.Dataset) *Repository {
	comma, _ := utf8.DecodeRuneInString(cfg.Delimiter)
	if comma == utf8.RuneError {
		comma = ','
	}
	return &Repository{
		campaignsPath:   cfg.CampaignsPath,
		predictionsPath: cfg.PredictionsPath,
		comma:           comma,
	}
}

// LoadCampaigns parses the campaigns file.
func (r *Repository) LoadCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	t, err := r.read(ctx, r.campaignsPath)
	if err != nil {
		return nil, err
	}
	return parseCampaigns(t)
}

// LoadPredictions parses the predictions file.
func (r *Repository) LoadPredictions(ctx context.Context) (domain.PredictionSet, error) {
	t, err := r.read(ctx, r.predictionsPath)
	if err != nil {
		return domain.PredictionSet{}, err
	}
	return parsePredictions(t)
}

func (r *Repository) read(ctx context.Context, path string) (*table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return readTable(path, f, r.comma)
}
