// Package riskratio loads the downloaded risk-metrics spreadsheet and
// indexes its rows by scheme name for enrichment lookups.
package riskratio

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/fetcher"
	"github.com/sshravan91/fundscope/internal/model"
)

// headerScanLimit bounds the header sniff; report sheets carry a variable
// amount of banner rows above the real header.
const headerScanLimit = 200

// Loader indexes risk-metric rows by the sheet's scheme-name key. Reads are
// safe for concurrent use during the fan-out phase. Unlike the mapping
// store, a failed load keeps whatever was loaded before: the sheet is a
// best-effort enrichment source and stale rows beat none.
type Loader struct {
	mu   sync.RWMutex
	rows map[string]model.MetricsRow
}

// NewLoader returns an empty loader.
func NewLoader() *Loader {
	return &Loader{rows: make(map[string]model.MetricsRow)}
}

// Load reads a risk-metrics spreadsheet (.xls or .xlsx, picked by
// extension) and merges its rows into the index. Later rows with the same
// key win, both within one file and across loads.
func (l *Loader) Load(path string) error {
	sheet, err := fetcher.ReadSheet(path)
	if err != nil {
		return err
	}

	headerIdx := detectHeaderRow(sheet)
	var headers []string
	if headerIdx < len(sheet) {
		headers = sheet[headerIdx]
	}
	columns := resolveColumns(headers, metricAliases)

	loaded := 0
	l.mu.Lock()
	for _, row := range sheet[min(headerIdx+1, len(sheet)):] {
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		metrics := make(model.MetricsRow, len(columns))
		for field, idx := range columns {
			if idx >= len(row) {
				continue
			}
			if cell := strings.TrimSpace(row[idx]); cell != "" {
				metrics[field] = model.Cell(cell)
			}
		}
		l.rows[key] = metrics
		loaded++
	}
	l.mu.Unlock()

	zap.L().Info("risk ratios loaded",
		zap.String("path", path),
		zap.Int("header_row", headerIdx),
		zap.Int("columns", len(columns)),
		zap.Int("rows", loaded),
	)
	return nil
}

// Row returns the metrics row for an exact scheme-name key.
func (l *Loader) Row(key string) (model.MetricsRow, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	row, ok := l.rows[key]
	return row, ok
}

// Len returns the number of indexed rows.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}

// detectHeaderRow scans the first rows for one that reads like a header:
// either a scheme listing ("scheme name" + "category") or the risk-ratio
// report layout ("volatility" + "sharpe"). Falls back to row 0.
func detectHeaderRow(rows [][]string) int {
	limit := min(len(rows), headerScanLimit)
	for i := 0; i < limit; i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		if strings.Contains(joined, "scheme name") && strings.Contains(joined, "category") {
			return i
		}
		if strings.Contains(joined, "volatility") && strings.Contains(joined, "sharpe") {
			return i
		}
	}
	return 0
}
