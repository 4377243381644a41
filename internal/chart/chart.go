// Package chart renders journal entries as a bar chart for the optional
// visualization in process responses.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mizan-labs/mizan/internal/finance"
)

var (
	debitColor  = drawing.ColorFromHex("1f77b4")
	creditColor = drawing.ColorFromHex("ff7f0e")
)

// Render draws one bar per journal entry, debits in blue and credits in
// orange, and returns the PNG as a base64 string suitable for embedding in a
// JSON response. Zero-amount entries are skipped; if nothing remains an
// error is returned.
func Render(title string, entries []finance.JournalEntry) (string, error) {
	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		amount := e.Debit
		style := chart.Style{FillColor: debitColor, StrokeColor: debitColor}
		if e.Credit > 0 {
			amount = e.Credit
			style = chart.Style{FillColor: creditColor, StrokeColor: creditColor}
		}
		if amount <= 0 {
			continue
		}
		bars = append(bars, chart.Value{
			Label: shorten(e.Account),
			Value: amount,
			Style: style,
		})
	}
	if len(bars) == 0 {
		return "", fmt.Errorf("chart: no non-zero entries to draw")
	}

	graph := chart.BarChart{
		Title:    title,
		Height:   420,
		BarWidth: 48,
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 45},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("chart: render: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// shorten keeps axis labels readable for long account names.
func shorten(account string) string {
	const max = 24
	if len(account) <= max {
		return account
	}
	return account[:max-1] + "…"
}
