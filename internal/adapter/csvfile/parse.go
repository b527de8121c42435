package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/port"
)

// table is a header index plus the data rows of one CSV document.
type table struct {
	name   string
	header map[string]int
	rows   [][]string
}

func readTable(name string, r io.Reader, comma rune) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	if comma != 0 {
		cr.Comma = comma
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: csv read: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: csv has no header", name)
	}
	t := &table{name: name, header: make(map[string]int, len(records[0])), rows: records[1:]}
	for i, col := range records[0] {
		col = strings.TrimPrefix(col, "\ufeff")
		t.header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return t, nil
}

func (t *table) has(col string) bool {
	_, ok := t.header[col]
	return ok
}

func (t *table) require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", t.name, port.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// cell returns the trimmed value of col in row; short rows read as empty.
func (t *table) cell(row []string, col string) string {
	idx, ok := t.header[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (t *table) cellErr(line int, col string, err error) error {
	return fmt.Errorf("%s line %d: column %s: %w", t.name, line, col, err)
}

func parseCampaigns(t *table) ([]domain.CampaignRecord, error) {
	if err := t.require(ColChannel, ColCostTotal, ColConversions); err != nil {
		return nil, err
	}
	out := make([]domain.CampaignRecord, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		cost, err := parseFloat(t.cell(row, ColCostTotal))
		if err != nil {
			return nil, t.cellErr(line, ColCostTotal, err)
		}
		conv, err := parseCount(t.cell(row, ColConversions))
		if err != nil {
			return nil, t.cellErr(line, ColConversions, err)
		}
		out = append(out, domain.CampaignRecord{
			Channel:     t.cell(row, ColChannel),
			CostTotal:   cost,
			Conversions: conv,
		})
	}
	return out, nil
}

// parsePredictions reads the predictions table. The converted label comes
// from converteu when present, otherwise it is copied from real_converteu,
// otherwise it is 0 for every row.
func parsePredictions(t *table) (domain.PredictionSet, error) {
	if err := t.require(ColProbability); err != nil {
		return domain.PredictionSet{}, err
	}
	set := domain.PredictionSet{
		Records:     make([]domain.PredictionRecord, 0, len(t.rows)),
		LabelSource: domain.LabelDefaulted,
	}
	labelCol := ""
	switch {
	case t.has(ColConverted):
		labelCol, set.LabelSource = ColConverted, domain.LabelConverted
	case t.has(ColRealConverted):
		labelCol, set.LabelSource = ColRealConverted, domain.LabelRealConverted
	}

	for i, row := range t.rows {
		line := i + 2
		p, err := parseFloat(t.cell(row, ColProbability))
		if err != nil {
			return domain.PredictionSet{}, t.cellErr(line, ColProbability, err)
		}
		rec := domain.PredictionRecord{
			Channel:               t.cell(row, ColChannel),
			ConversionProbability: p,
		}
		if labelCol != "" {
			if rec.Converted, err = parseLabel(t.cell(row, labelCol)); err != nil {
				return domain.PredictionSet{}, t.cellErr(line, labelCol, err)
			}
		}
		set.Records = append(set.Records, rec)
	}
	return set, nil
}

var errEmpty = errors.New("empty value")

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, errEmpty
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

// parseCount accepts integers and integral floats such as "3.0", which is
// how pandas writes integer columns that once held a missing value.
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, errEmpty
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int64(f), nil
}

func parseLabel(s string) (int, error) {
	switch strings.ToLower(s) {
	case "1", "1.0", "true", "t", "yes", "sim":
		return 1, nil
	case "0", "0.0", "false", "f", "no", "nao", "não":
		return 0, nil
	}
	return 0, fmt.Errorf("%q is not a 0/1 label", s)
}
