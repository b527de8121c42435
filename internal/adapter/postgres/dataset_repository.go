package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"cac-insights/internal/config/configs"
	"cac-insights/internal/core/domain"
)

// DatasetRepository implements port.DatasetRepository using pgxpool for
// PostgreSQL. Both tables are read in full on every call.
type DatasetRepository struct {
	pool             *pgxpool.Pool
	campaignsTable   string
	predictionsTable string
}

// NewDatasetRepository returns a new repository instance reading the
// tables named in cfg.
func NewDatasetRepository(pool *pgxpool.Pool, cfg configs.Postgres) *DatasetRepository {
	return &DatasetRepository{
		pool:             pool,
		campaignsTable:   pq.QuoteIdentifier(cfg.CampaignsTable),
		predictionsTable: pq.QuoteIdentifier(cfg.PredictionsTable),
	}
}

// LoadCampaigns returns every campaign row ordered by id.
func (r *DatasetRepository) LoadCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	query := fmt.Sprintf(`SELECT channel, cost_total, conversions FROM %s ORDER BY id`, r.campaignsTable)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var c domain.CampaignRecord
		if err := row.Scan(&c.Channel, &c.CostTotal, &c.Conversions); err != nil {
			return c, err
		}
		return c, finite("cost_total", c.CostTotal)
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return records, nil
}

// predictionRow mirrors prediction_records. Both label columns are
// nullable; a column that is null on every row counts as absent.
type predictionRow struct {
	Channel       *string
	Probability   float64
	Converted     *int16
	RealConverted *int16
}

// LoadPredictions returns every prediction row ordered by id.
func (r *DatasetRepository) LoadPredictions(ctx context.Context) (domain.PredictionSet, error) {
	query := fmt.Sprintf(`SELECT channel, conversion_probability, converted, real_converted FROM %s ORDER BY id`, r.predictionsTable)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return domain.PredictionSet{}, fmt.Errorf("query predictions: %w", err)
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (predictionRow, error) {
		var p predictionRow
		if err := row.Scan(&p.Channel, &p.Probability, &p.Converted, &p.RealConverted); err != nil {
			return p, err
		}
		return p, finite("conversion_probability", p.Probability)
	})
	if err != nil {
		return domain.PredictionSet{}, fmt.Errorf("scan predictions: %w", err)
	}
	return toPredictionSet(raw), nil
}

// toPredictionSet applies the label fallback: converted if any row has it,
// else real_converted if any row has it, else 0 everywhere. Nulls inside
// the chosen column read as 0.
func toPredictionSet(raw []predictionRow) domain.PredictionSet {
	set := domain.PredictionSet{
		Records:     make([]domain.PredictionRecord, len(raw)),
		LabelSource: domain.LabelDefaulted,
	}
	for _, p := range raw {
		if p.Converted != nil {
			set.LabelSource = domain.LabelConverted
			break
		}
		if p.RealConverted != nil {
			set.LabelSource = domain.LabelRealConverted
		}
	}

	for i, p := range raw {
		rec := domain.PredictionRecord{ConversionProbability: p.Probability}
		if p.Channel != nil {
			rec.Channel = *p.Channel
		}
		var label *int16
		switch set.LabelSource {
		case domain.LabelConverted:
			label = p.Converted
		case domain.LabelRealConverted:
			label = p.RealConverted
		}
		if label != nil && *label != 0 {
			rec.Converted = 1
		}
		set.Records[i] = rec
	}
	return set
}

// finite rejects the NaN and Infinity values Postgres float columns accept.
func finite(column string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("column %s: %v is not a finite number", column, v)
	}
	return nil
}
