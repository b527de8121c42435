// Package report writes a dashboard snapshot as a Markdown or JSON
// document for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cac-insights/internal/core/domain"
)

// Formats accepted by Write.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Write renders d to w in the given format.
func Write(w io.Writer, d *domain.Dashboard, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatMarkdown, "md", "":
		_, err := io.WriteString(w, Markdown(d))
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Markdown renders the snapshot as a Markdown report.
func Markdown(d *domain.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# CAC Report (%s)\n\n", d.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	s := d.Summary
	fmt.Fprintf(&b, "- **Campaign rows:** %d\n- **Prediction rows:** %d\n", d.CampaignRows, d.PredictionRows)
	fmt.Fprintf(&b, "- **Total spend:** R$ %.2f\n- **Conversions:** %d\n", s.TotalCost, s.TotalConversions)
	if s.Defined {
		fmt.Fprintf(&b, "- **Overall CAC:** R$ %.2f (baseline R$ %.2f)\n", s.OverallCAC, s.BaselineCAC)
		fmt.Fprintf(&b, "- **Reduction:** %s%%\n- **Estimated savings:** R$ %s\n\n",
			s.ReductionPct.StringFixed(1), s.EstimatedSavings.StringFixed(2))
	} else {
		fmt.Fprintf(&b, "- **Overall CAC:** undefined (no conversions)\n\n")
	}

	if len(d.CACPerChannel) > 0 {
		b.WriteString("## CAC by channel\n\n| Channel | Mean CAC |\n|---|---:|\n")
		for _, c := range d.CACPerChannel {
			fmt.Fprintf(&b, "| %s | R$ %.2f |\n", c.Channel, c.Value)
		}
		b.WriteString("\n")
	}
	if len(d.ConversionsPerChannel) > 0 {
		b.WriteString("## Conversions by channel\n\n| Channel | Conversions |\n|---|---:|\n")
		for _, c := range d.ConversionsPerChannel {
			fmt.Fprintf(&b, "| %s | %d |\n", c.Channel, c.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Conversion probability histogram\n\n")
	for i, c := range d.Histogram.Counts {
		fmt.Fprintf(&b, "- [%.2f, %.2f%s: %d\n", d.Histogram.Edges[i], d.Histogram.Edges[i+1], closing(i, len(d.Histogram.Counts)), c)
	}
	b.WriteString("\n## Model metrics\n\n")
	m := d.Model
	switch m.Source {
	case domain.MetricsUnavailable:
		fmt.Fprintf(&b, "Unavailable: %s\n", m.Reason)
	default:
		fmt.Fprintf(&b, "Source: %s\n\n- Accuracy: %.2f\n- Precision: %.2f\n- Recall: %.2f\n", m.Source, m.Accuracy, m.Precision, m.Recall)
		if m.ROCAUC != nil {
			fmt.Fprintf(&b, "- ROC-AUC: %.2f\n", *m.ROCAUC)
		}
	}

	if len(d.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n")
		for _, r := range d.Recommendations {
			fmt.Fprintf(&b, "\n### %s\n", r.Title)
			for _, item := range r.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
	}
	return b.String()
}

func closing(i, n int) string {
	if i == n-1 {
		return "]"
	}
	return ")"
}
