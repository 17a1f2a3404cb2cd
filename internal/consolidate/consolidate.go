// Package consolidate merges the trailing-returns and risk-ratios report
// sheets into one consolidated workbook, joined by normalized scheme name.
package consolidate

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/fetcher"
)

// outputColumns is the fixed column order of the consolidated sheet.
var outputColumns = []string{
	"Scheme name",
	"Category",
	"NAV",
	"AUM",
	"TER",
	"1 Yr Rtn",
	"3 Yr Rtn",
	"5 Yr Rtn",
	"10 Yr Rtn",
	"Volatility",
	"Standard Deviation",
	"Sharpe Ratio",
	"Beta",
	"Alpha",
	"Mean",
	"Sortino Ratio",
	"Up Market Capture Ratio",
	"Down Market Capture Ratio",
	"Maximum Drawdown",
	"R-Squared",
	"Information Ratio",
	"Treynor Ratio",
}

// trailingAliases resolve the trailing-returns report columns.
var trailingAliases = map[string][]string{
	"Scheme name": {"Scheme Name", "Scheme", "Fund Name", "Fund"},
	"Category":    {"Category"},
	"NAV":         {"NAV"},
	"AUM":         {"AUM", "AUM (Cr)", "AUM (in Cr)"},
	"TER":         {"TER", "Expense Ratio"},
	"1 Yr Rtn":    {"1 Year Return", "1 Yr Return", "1 Year Rtn", "1 Yr Rtn"},
	"3 Yr Rtn":    {"3 Year Return", "3 Yr Return", "3 Year Rtn", "3 Yr Rtn"},
	"5 Yr Rtn":    {"5 Year Return", "5 Yr Return", "5 Year Rtn", "5 Yr Rtn"},
	"10 Yr Rtn":   {"10 Year Return", "10 Yr Return", "10 Year Rtn", "10 Yr Rtn"},
}

// riskAliases resolve the risk-ratios report columns.
var riskAliases = map[string][]string{
	"Scheme name":               {"Scheme Name", "Scheme", "Fund Name", "Fund"},
	"Volatility":                {"Volatility"},
	"Standard Deviation":        {"Standard Deviation"},
	"Sharpe Ratio":              {"Sharpe Ratio", "Sharp Ratio"},
	"Beta":                      {"Beta"},
	"Alpha":                     {"Alpha"},
	"Mean":                      {"Mean"},
	"Sortino Ratio":             {"Sortino Ratio"},
	"Up Market Capture Ratio":   {"Up Market Capture Ratio", "Up Market Capture\nRatio"},
	"Down Market Capture Ratio": {"Down Market Capture Ratio", "Down Market Capture\nRatio"},
	"Maximum Drawdown":          {"Maximum Drawdown"},
	"R-Squared":                 {"R-Squared", "R Squared"},
	"Information Ratio":         {"Information Ratio"},
	"Treynor Ratio":             {"Treynor Ratio"},
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalize reduces a header or scheme name to a join-stable key.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	return nonAlnum.ReplaceAllString(s, "")
}

// Consolidate reads both reports (either spreadsheet format), joins risk
// metrics onto the trailing-returns universe by normalized scheme name, and
// writes the consolidated XLSX to outPath. Schemes present only in the risk
// sheet are dropped; the trailing report defines the universe.
func Consolidate(trailingPath, riskPath, outPath string) error {
	trailingHeaders, trailingRows, err := loadReport(trailingPath)
	if err != nil {
		return err
	}
	riskHeaders, riskRows, err := loadReport(riskPath)
	if err != nil {
		return err
	}

	tCols := resolveReportColumns(trailingHeaders, trailingAliases)
	rCols := resolveReportColumns(riskHeaders, riskAliases)

	merged := make(map[string]map[string]string)
	var order []string
	for _, row := range trailingRows {
		scheme := cellAt(row, tCols["Scheme name"])
		key := normalize(scheme)
		if key == "" {
			continue
		}
		if _, seen := merged[key]; !seen {
			order = append(order, key)
		}
		rec := map[string]string{"Scheme name": scheme}
		for col, idx := range tCols {
			if col == "Scheme name" {
				continue
			}
			rec[col] = cellAt(row, idx)
		}
		merged[key] = rec
	}

	joined := 0
	for _, row := range riskRows {
		key := normalize(cellAt(row, rCols["Scheme name"]))
		rec, ok := merged[key]
		if key == "" || !ok {
			continue
		}
		for col, idx := range rCols {
			if col == "Scheme name" {
				continue
			}
			if v := cellAt(row, idx); v != "" {
				rec[col] = v
			}
		}
		joined++
	}

	zap.L().Info("consolidated reports",
		zap.Int("schemes", len(order)),
		zap.Int("with_risk_metrics", joined),
	)

	return writeWorkbook(outPath, merged, order)
}

// loadReport reads a report sheet and splits it at the detected header row.
// Reports carry banner rows above the header; the first row mentioning both
// "scheme" and "category" wins, scanned over the first 60 rows.
func loadReport(path string) ([]string, [][]string, error) {
	rows, err := fetcher.ReadSheet(path)
	if err != nil {
		return nil, nil, err
	}

	headerIdx := 0
	for i := 0; i < min(len(rows), 60); i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		if strings.Contains(joined, "scheme") && strings.Contains(joined, "category") {
			headerIdx = i
			break
		}
	}

	if headerIdx >= len(rows) {
		return nil, nil, eris.Errorf("consolidate: %s has no data rows", path)
	}
	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, rows[headerIdx+1:], nil
}

// resolveReportColumns maps output columns to header indexes: exact
// normalized alias match first, containment fallback second.
func resolveReportColumns(headers []string, aliases map[string][]string) map[string]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalize(h)
	}

	columns := make(map[string]int)
	for col, names := range aliases {
		idx := -1
		for _, name := range names {
			alias := normalize(name)
			for i, h := range normalized {
				if h == alias {
					idx = i
					break
				}
			}
			if idx >= 0 {
				break
			}
		}
		if idx < 0 {
			for _, name := range names {
				alias := normalize(name)
				for i, h := range normalized {
					if h != "" && (strings.Contains(h, alias) || strings.Contains(alias, h)) {
						idx = i
						break
					}
				}
				if idx >= 0 {
					break
				}
			}
		}
		if idx >= 0 {
			columns[col] = idx
		}
	}
	return columns
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func writeWorkbook(path string, merged map[string]map[string]string, order []string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Consolidated Returns")
	if err != nil {
		return eris.Wrap(err, "consolidate: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range outputColumns {
		header.AddCell().SetString(col)
	}

	for _, key := range order {
		rec := merged[key]
		row := sheet.AddRow()
		for _, col := range outputColumns {
			row.AddCell().SetString(rec[col])
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "consolidate: save %s", path)
	}
	return nil
}
