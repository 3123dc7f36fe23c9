// Package report renders forecasts for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Alias1177/CoinPredictor/internal/analyze"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Write renders results in the given format.
func Write(w io.Writer, format string, results []analyze.Result) error {
	switch format {
	case FormatTable:
		return WriteTable(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteTable prints one row per asset followed by its top reasons.
func WriteTable(w io.Writer, results []analyze.Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Coin", "Price", "Prediction", "Confidence", "Target", "Support", "RSI", "Trend S/M/L", "Reasons"})

	for _, r := range results {
		if r.Err != nil {
			t.AppendRow(table.Row{coinLabel(r), "-", "error", "-", "-", "-", "-", "-", r.Err.Error()})
			continue
		}
		f := r.Forecast
		res := f.Result
		t.AppendRow(table.Row{
			coinLabel(r),
			formatPrice(f.Coin.CurrentPrice),
			strings.ToUpper(string(res.Prediction)),
			fmt.Sprintf("%d%%", res.Confidence),
			formatPrice(res.NextTarget),
			formatPrice(res.SupportLevel),
			fmt.Sprintf("%.1f", res.Indicators.RSI),
			fmt.Sprintf("%s/%s/%s", res.ShortTermTrend, res.MediumTermTrend, res.LongTermTrend),
			strings.Join(res.Reasons, "\n"),
		})
		t.AppendSeparator()
	}

	t.Render()
	return nil
}

type jsonResult struct {
	Coin     string      `json:"coin"`
	Forecast interface{} `json:"forecast,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// WriteJSON prints the results as an indented JSON array.
func WriteJSON(w io.Writer, results []analyze.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{Coin: coinLabel(r)}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		} else {
			jr.Forecast = r.Forecast
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

func coinLabel(r analyze.Result) string {
	if r.Coin.Symbol != "" {
		return strings.ToUpper(r.Coin.Symbol)
	}
	return r.Coin.ID
}

// formatPrice keeps sub-cent assets readable.
func formatPrice(v float64) string {
	switch {
	case v >= 1:
		return fmt.Sprintf("%.2f", v)
	case v >= 0.01:
		return fmt.Sprintf("%.4f", v)
	default:
		return fmt.Sprintf("%.8f", v)
	}
}
