package db

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"cac-insights/internal/adapter/csvfile"
)

// ExportCSV writes sim as the two CSV files the csv dataset source reads.
func ExportCSV(sim Simulation, campaignsPath, predictionsPath string) error {
	campaigns := [][]string{{"data", csvfile.ColChannel, "impressoes", "cliques", csvfile.ColCostTotal, csvfile.ColConversions}}
	for _, c := range sim.Campaigns {
		campaigns = append(campaigns, []string{
			c.Day.Format("2006-01-02"),
			c.Channel,
			strconv.FormatInt(c.Impressions, 10),
			strconv.FormatInt(c.Clicks, 10),
			strconv.FormatFloat(c.CostTotal, 'f', 2, 64),
			strconv.FormatInt(c.Conversions, 10),
		})
	}
	if err := writeCSV(campaignsPath, campaigns); err != nil {
		return err
	}

	predictions := [][]string{{csvfile.ColChannel, csvfile.ColProbability, csvfile.ColRealConverted}}
	for _, p := range sim.Predictions {
		predictions = append(predictions, []string{
			p.Channel,
			strconv.FormatFloat(p.Probability, 'f', -1, 64),
			strconv.Itoa(int(p.Converted)),
		})
	}
	return writeCSV(predictionsPath, predictions)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err = w.WriteAll(records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
