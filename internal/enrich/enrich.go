// Package enrich augments extracted fund data with spreadsheet risk metrics
// and per-scheme financial ratios from the stats API. Both enrichments are
// best-effort and independent: neither one's failure blocks the other or
// fails the fund.
package enrich

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/fetcher"
	"github.com/sshravan91/fundscope/internal/mapping"
	"github.com/sshravan91/fundscope/internal/model"
	"github.com/sshravan91/fundscope/internal/riskratio"
)

// schemeStats is the stats API response. Pointer fields distinguish a
// missing ratio from zero.
type schemeStats struct {
	PE *float64 `json:"pe"`
	PB *float64 `json:"pb"`
}

// Enricher resolves identifiers across sources and merges the extra fields
// into a fund's value map.
type Enricher struct {
	mapping   *mapping.Store
	metrics   *riskratio.Loader
	fetcher   *fetcher.HTTPFetcher
	statsBase string
}

// New creates an Enricher. statsBase is the financial-ratios API base URL;
// the per-scheme endpoint is <statsBase>/<code>/stats.
func New(store *mapping.Store, metrics *riskratio.Loader, f *fetcher.HTTPFetcher, statsBase string) *Enricher {
	return &Enricher{
		mapping:   store,
		metrics:   metrics,
		fetcher:   f,
		statsBase: strings.TrimSuffix(statsBase, "/"),
	}
}

// Enrich merges risk metrics and scheme stats into the value map for the
// given display key. Idempotent: a second call overwrites with identical
// values. An unmapped display key simply contributes nothing.
func (e *Enricher) Enrich(ctx context.Context, values model.ValueMap, displayKey string) {
	e.applyMetrics(values, displayKey)
	e.applySchemeStats(ctx, values, displayKey)
}

// applyMetrics copies the fund's spreadsheet metrics row into the value
// map. Only fields present in the row are written; present fields overwrite.
func (e *Enricher) applyMetrics(values model.ValueMap, displayKey string) {
	metricsKey, ok := e.mapping.MetricsKey(displayKey)
	if !ok {
		return
	}
	row, ok := e.metrics.Row(metricsKey)
	if !ok {
		return
	}
	for field, v := range row {
		values[field] = v
	}
}

// applySchemeStats resolves the fund's scheme code and pulls P/E and P/B
// from the stats API. The fetch returns an explicit error and this stage
// explicitly discards it: the record proceeds without those fields.
func (e *Enricher) applySchemeStats(ctx context.Context, values model.ValueMap, displayKey string) {
	if !values.Has(model.FieldSchemeCode) {
		if code, ok := e.mapping.SchemeCode(displayKey); ok {
			values.SetString(model.FieldSchemeCode, code)
		}
	}

	code := strings.TrimSpace(values.Text(model.FieldSchemeCode))
	if code == "" {
		return
	}

	stats, err := e.fetchStats(ctx, code)
	if err != nil {
		zap.L().Debug("scheme stats unavailable",
			zap.String("fund", displayKey),
			zap.String("scheme_code", code),
			zap.Error(err),
		)
		return
	}
	if stats.PE != nil {
		values.SetNumber(model.FieldPERatio, *stats.PE)
	}
	if stats.PB != nil {
		values.SetNumber(model.FieldPBRatio, *stats.PB)
	}
}

func (e *Enricher) fetchStats(ctx context.Context, schemeCode string) (*schemeStats, error) {
	return fetcher.FetchJSON[schemeStats](ctx, e.fetcher, e.statsBase+"/"+schemeCode+"/stats")
}
