package db

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"cac-insights/internal/config/configs"
)

// channelProfile drives the simulated spend of one media channel.
type channelProfile struct {
	name       string
	targetCAC  float64 // typical cost per conversion
	minSpend   float64
	maxSpend   float64
	conversion float64 // share of scored visitors that convert
}

var simulatedChannels = []channelProfile{
	{name: "Google Ads", targetCAC: 160, minSpend: 800, maxSpend: 3000, conversion: 0.32},
	{name: "Meta Ads", targetCAC: 210, minSpend: 600, maxSpend: 2500, conversion: 0.27},
	{name: "TikTok Ads", targetCAC: 240, minSpend: 300, maxSpend: 1500, conversion: 0.22},
	{name: "LinkedIn", targetCAC: 380, minSpend: 400, maxSpend: 2000, conversion: 0.15},
}

// SimulatedCampaign is one generated campaign row.
type SimulatedCampaign struct {
	Day         time.Time
	Channel     string
	Impressions int64
	Clicks      int64
	CostTotal   float64
	Conversions int64
}

// SimulatedPrediction is one generated scored visitor.
type SimulatedPrediction struct {
	Channel     string
	Probability float64
	Converted   int16
}

// Simulation is a generated pair of datasets.
type Simulation struct {
	Campaigns   []SimulatedCampaign
	Predictions []SimulatedPrediction
}

// Simulate generates days of spend for every channel plus scored visitors.
// The same seed always yields the same data.
func Simulate(seed int64, start time.Time, days, visitors int) Simulation {
	r := rand.New(rand.NewSource(seed))
	var sim Simulation
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		for _, ch := range simulatedChannels {
			cost := ch.minSpend + r.Float64()*(ch.maxSpend-ch.minSpend)
			// early-week days convert better
			boost := 1.0
			if wd := day.Weekday(); wd == time.Monday || wd == time.Tuesday {
				boost = 1.35
			}
			conv := int64(math.Round(cost / ch.targetCAC * boost * (0.5 + r.Float64())))
			impressions := int64(cost * (80 + r.Float64()*40))
			sim.Campaigns = append(sim.Campaigns, SimulatedCampaign{
				Day:         day,
				Channel:     ch.name,
				Impressions: impressions,
				Clicks:      int64(float64(impressions) * (0.01 + r.Float64()*0.02)),
				CostTotal:   math.Round(cost*100) / 100,
				Conversions: conv,
			})
		}
	}

	for i := 0; i < visitors; i++ {
		ch := simulatedChannels[r.Intn(len(simulatedChannels))]
		var converted int16
		center := 0.3
		if r.Float64() < ch.conversion {
			converted = 1
			center = 0.68
		}
		p := center + r.NormFloat64()*0.16
		p = math.Max(0, math.Min(1, p))
		sim.Predictions = append(sim.Predictions, SimulatedPrediction{
			Channel:     ch.name,
			Probability: math.Round(p*10000) / 10000,
			Converted:   converted,
		})
	}
	return sim
}

// Seed replaces the contents of the dataset tables with sim.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg configs.Postgres, sim Simulation) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	campaigns := pq.QuoteIdentifier(cfg.CampaignsTable)
	predictions := pq.QuoteIdentifier(cfg.PredictionsTable)
	if _, err = tx.Exec(ctx, fmt.Sprintf(`TRUNCATE %s, %s RESTART IDENTITY`, campaigns, predictions)); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{cfg.CampaignsTable},
		[]string{"day", "channel", "impressions", "clicks", "cost_total", "conversions"},
		pgx.CopyFromSlice(len(sim.Campaigns), func(i int) ([]any, error) {
			c := sim.Campaigns[i]
			return []any{c.Day, c.Channel, c.Impressions, c.Clicks, c.CostTotal, c.Conversions}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy campaigns: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{cfg.PredictionsTable},
		[]string{"channel", "conversion_probability", "real_converted"},
		pgx.CopyFromSlice(len(sim.Predictions), func(i int) ([]any, error) {
			p := sim.Predictions[i]
			return []any{p.Channel, p.Probability, p.Converted}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy predictions: %w", err)
	}

	err = tx.Commit(ctx)
	return err
}
