package httpadapter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"

	"github.com/shopspring/decimal"

	"cac-insights/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var tabLabels = map[domain.Tab]string{
	domain.TabDashboard:       "Dashboard",
	domain.TabModel:           "AI model",
	domain.TabRecommendations: "Recommendations",
	domain.TabData:            "Data",
}

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"money":    money,
	"moneyDec": moneyDec,
	"pct":      func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
	"pctDec":   func(d decimal.Decimal) string { return d.StringFixed(1) + "%" },
	"fixed":    func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).ParseFS(templateFS, "templates/dashboard.html"))

type tabLink struct {
	ID     domain.Tab
	Label  string
	Active bool
}

// pageView is the template model for one page load.
type pageView struct {
	Tabs   []tabLink
	Active domain.Tab
	Error  string
	D      *domain.Dashboard

	CACChart         template.HTML
	ConversionsChart template.HTML
	HistogramChart   template.HTML
}

// handlePage renders the tabbed dashboard. The tab query parameter picks
// the active tab; unknown or hidden tabs fall back to the first one. A
// load failure renders a single error message and nothing else.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	active := domain.Tab(r.URL.Query().Get("tab"))
	if !slices.Contains(h.tabs, active) {
		active = h.tabs[0]
	}
	view := pageView{Active: active}
	for _, t := range h.tabs {
		view.Tabs = append(view.Tabs, tabLink{ID: t, Label: tabLabels[t], Active: t == active})
	}

	status := http.StatusOK
	d, err := h.svc.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("snapshot error", slog.Any("error", err))
		view.Error = err.Error()
		status = http.StatusInternalServerError
	} else {
		view.D = d
		h.fillCharts(&view)
	}

	var buf bytes.Buffer
	if err = pageTemplate.Execute(&buf, view); err != nil {
		h.logger.Error("render page error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fillCharts(view *pageView) {
	d := view.D
	switch view.Active {
	case domain.TabDashboard:
		labels := make([]string, len(d.CACPerChannel))
		values := make([]float64, len(d.CACPerChannel))
		for i, c := range d.CACPerChannel {
			labels[i], values[i] = c.Channel, c.Value
		}
		view.CACChart = barChart(labels, values, func(v float64) string { return money(v) })

		labels = make([]string, len(d.ConversionsPerChannel))
		values = make([]float64, len(d.ConversionsPerChannel))
		for i, c := range d.ConversionsPerChannel {
			labels[i], values[i] = c.Channel, float64(c.Count)
		}
		view.ConversionsChart = barChart(labels, values, func(v float64) string { return fmt.Sprintf("%.0f", v) })
	case domain.TabModel:
		view.HistogramChart = histogramChart(d.Histogram.Edges, d.Histogram.Counts)
	}
}

// money formats a monetary amount without cents, as the dashboard tiles do.
func money(v float64) string {
	return moneyDec(decimal.NewFromFloat(v))
}

func moneyDec(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(0)
}
