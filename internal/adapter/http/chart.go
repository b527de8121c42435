package httpadapter

import (
	"fmt"
	"html/template"
	"strings"
)

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"}

const (
	chartWidth  = 640.0
	chartHeight = 320.0
	chartPad    = 40.0
)

// barChart renders labelled vertical bars as inline SVG with each value
// printed above its bar.
func barChart(labels []string, values []float64, format func(float64) string) template.HTML {
	if len(values) == 0 {
		return template.HTML(`<p class="muted">No data.</p>`)
	}
	maxV := maxOf(values)
	slot := (chartWidth - 2*chartPad) / float64(len(values))
	barW := slot * 0.6

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" role="img">`, chartWidth, chartHeight)
	baseY := chartHeight - chartPad
	fmt.Fprintf(&b, `<line x1="%.0f" y1="%.1f" x2="%.0f" y2="%.1f" stroke="#999" stroke-width="0.5"/>`, chartPad, baseY, chartWidth-chartPad, baseY)
	for i, v := range values {
		h := scale(v, maxV)
		x := chartPad + float64(i)*slot + (slot-barW)/2
		y := baseY - h
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.85" stroke="#000" stroke-width="0.6"/>`,
			x, y, barW, h, palette[i%len(palette)])
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11" font-weight="bold">%s</text>`,
			x+barW/2, y-5, template.HTMLEscapeString(format(v)))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">%s</text>`,
			x+barW/2, baseY+16, template.HTMLEscapeString(labels[i]))
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// histogramChart renders adjacent bars for bucket counts with the edge
// values labelled at both ends and the middle.
func histogramChart(edges []float64, counts []int64) template.HTML {
	if len(counts) == 0 {
		return template.HTML(`<p class="muted">No data.</p>`)
	}
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	maxV := maxOf(values)
	barW := (chartWidth - 2*chartPad) / float64(len(counts))
	baseY := chartHeight - chartPad

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" role="img">`, chartWidth, chartHeight)
	for i, v := range values {
		h := scale(v, maxV)
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#4C72B0" fill-opacity="0.85" stroke="#fff" stroke-width="0.5"><title>%d</title></rect>`,
			chartPad+float64(i)*barW, baseY-h, barW, h, counts[i])
	}
	for _, i := range []int{0, len(counts) / 2, len(counts)} {
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">%.2f</text>`,
			chartPad+float64(i)*barW, baseY+16, edges[i])
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

func scale(v, maxV float64) float64 {
	if maxV <= 0 || v <= 0 {
		return 0
	}
	return v / maxV * (chartHeight - 2*chartPad - 20)
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
