package riskratio

import (
	"strings"

	"github.com/sshravan91/fundscope/internal/model"
)

// metricAliases maps each metric field to the header spellings the report
// builder has been seen to emit. The sheet wraps the capture-ratio headers
// across two lines.
var metricAliases = map[model.Field][]string{
	model.FieldVolatility:   {"Volatility"},
	model.FieldSharpeRatio:  {"Sharpe Ratio"},
	model.FieldBeta:         {"Beta"},
	model.FieldAlpha:        {"Alpha"},
	model.FieldMean:         {"Mean"},
	model.FieldSortinoRatio: {"Sortino Ratio"},
	model.FieldUpCapture:    {"Up Market Capture\nRatio", "Up Market Capture Ratio"},
	model.FieldDownCapture:  {"Down Market Capture\nRatio", "Down Market Capture Ratio"},
	model.FieldMaxDrawdown:  {"Maximum Drawdown"},
	model.FieldRSquared:     {"R-Squared", "R Squared"},
	model.FieldInfoRatio:    {"Information Ratio"},
}

// resolveColumns maps each field to a header index using case-insensitive
// containment either way (header contains alias, or alias contains header).
// Headers are scanned in order and the first match wins.
func resolveColumns(headers []string, aliases map[model.Field][]string) map[model.Field]int {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	columns := make(map[model.Field]int)
	for field, names := range aliases {
		for _, name := range names {
			idx := matchHeader(lowered, strings.ToLower(name))
			if idx >= 0 {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

func matchHeader(lowered []string, alias string) int {
	for i, h := range lowered {
		if h == "" {
			continue
		}
		if strings.Contains(h, alias) || strings.Contains(alias, h) {
			return i
		}
	}
	return -1
}
