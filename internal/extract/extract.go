// Package extract pulls a fund's statistics out of its research-site detail
// page. The page carries its numbers in three places: script-variable
// assignments, an overview table, and an advanced-statistics table; all
// three are scanned and merged into one value map.
package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/fetcher"
	"github.com/sshravan91/fundscope/internal/model"
)

// scriptVars maps the page's embedded script-variable names to fields.
var scriptVars = map[string]model.Field{
	"scheme_inception_returns": model.FieldCAGRInception,
	"scheme_1yr_returns":       model.FieldCAGR1Y,
	"scheme_3yr_returns":       model.FieldCAGR3Y,
	"scheme_5yr_returns":       model.FieldCAGR5Y,
	"scheme_10yr_returns":      model.FieldCAGR10Y,
	"category_1yr_returns":     model.FieldCAGR1YCategory,
	"category_3yr_returns":     model.FieldCAGR3YCategory,
	"category_5yr_returns":     model.FieldCAGR5YCategory,
	"category_10yr_returns":    model.FieldCAGR10YCategory,
	"benchmark_1yr_returns":    model.FieldCAGR1YBenchmark,
	"benchmark_3yr_returns":    model.FieldCAGR3YBenchmark,
	"benchmark_5yr_returns":    model.FieldCAGR5YBenchmark,
	"benchmark_10yr_returns":   model.FieldCAGR10YBenchmark,
	"scheme_nav":               model.FieldNAV,
	"scheme_benchmark":         model.FieldBenchmarkType,
}

// scriptVarPatterns holds one compiled pattern per script variable,
// matching assignments like: var scheme_nav = '45.67'; or scheme_nav="45.67"
var scriptVarPatterns = compileScriptVarPatterns()

func compileScriptVarPatterns() map[model.Field]*regexp.Regexp {
	patterns := make(map[model.Field]*regexp.Regexp, len(scriptVars))
	for name, field := range scriptVars {
		patterns[field] = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*=\s*['"]([^'"]+)['"]`)
	}
	return patterns
}

// overviewRule matches one overview-table row phrase. The value is the cell
// text with the phrase removed; some values carry an as-on suffix that gets
// cut first.
type overviewRule struct {
	phrase string
	field  model.Field
	cut    string
}

// overviewRules are scanned longest phrase first so that a cell containing
// several phrases resolves deterministically.
var overviewRules = []overviewRule{
	{phrase: "Total Assets:", field: model.FieldTotalAssets, cut: " Cr As on "},
	{phrase: "Launch Date:", field: model.FieldLaunchDate},
	{phrase: "Category: ", field: model.FieldCategory},
	{phrase: "Turn over:", field: model.FieldTurnover, cut: "|"},
	{phrase: "TER:", field: model.FieldTER, cut: " As on "},
}

// statsRules match the advanced-statistics table labels, longest first.
var statsRules = []struct {
	phrase string
	field  model.Field
}{
	{"Standard Deviation", model.FieldStdDev},
	{"Sharpe Ratio", model.FieldSharpeRatio},
	{"Alpha", model.FieldAlpha},
	{"Beta", model.FieldBeta},
}

// Extractor fetches and parses fund detail pages.
type Extractor struct {
	fetcher *fetcher.HTTPFetcher
	baseURL string
}

// New creates an Extractor against the given research-site base URL.
func New(f *fetcher.HTTPFetcher, baseURL string) *Extractor {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Extractor{fetcher: f, baseURL: baseURL}
}

// Extract fetches one fund's detail page and returns everything it could
// read from it. A fetch error or a page that yields no fields at all is a
// failure outcome carrying the display key; a partially-readable page is a
// success with whatever was found.
func (e *Extractor) Extract(ctx context.Context, id model.Identifier) model.Outcome {
	primary := id.Primary()
	pageURL := e.baseURL + primary

	body, err := e.fetcher.Get(ctx, pageURL)
	if err != nil {
		zap.L().Warn("fund page fetch failed",
			zap.String("fund", primary),
			zap.String("url", pageURL),
			zap.Error(err),
		)
		return model.Failure(primary)
	}

	values := make(model.ValueMap)
	scanScriptVars(body, values)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		zap.L().Warn("fund page parse failed",
			zap.String("fund", primary),
			zap.Error(err),
		)
	} else {
		if !values.Has(model.FieldNAV) {
			scanNAVFallback(doc, values)
		}
		scanOverviewTables(doc, values)
		scanStatsTables(doc, values)
	}

	if len(values) == 0 {
		zap.L().Warn("fund has no data", zap.String("fund", primary))
		return model.Failure(primary)
	}

	values.SetString(model.FieldFund, primary)
	zap.L().Debug("fund page parsed",
		zap.String("fund", primary),
		zap.Int("fields", len(values)),
	)
	return model.Success(primary, values)
}

// scanScriptVars extracts script-variable assignments by regex. The first
// capture group, trimmed, is the value; empty matches are dropped.
func scanScriptVars(body string, values model.ValueMap) {
	for field, pattern := range scriptVarPatterns {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			values.SetString(field, v)
		}
	}
}

// scanNAVFallback reads the displayed NAV when the script variables did not
// carry it: the label div signals "NAV as on" and the value sits in the
// heading that follows, with currency symbol and thousands separators.
func scanNAVFallback(doc *goquery.Document, values model.ValueMap) {
	doc.Find("div.nav-cagr-label").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !strings.Contains(label.Text(), "NAV as on") {
			return true
		}
		heading := label.NextAllFiltered("h4").First()
		if heading.Length() == 0 {
			heading = label.Parent().Find("h4").First()
		}
		if heading.Length() == 0 {
			return true
		}
		nav := strings.TrimSpace(heading.Text())
		nav = strings.ReplaceAll(nav, "₹", "")
		nav = strings.ReplaceAll(nav, ",", "")
		if nav != "" {
			values.SetString(model.FieldNAV, nav)
		}
		return false
	})
}

// scanOverviewTables reads the scheme-overview tables: each row's first cell
// is matched against the known phrases and the remainder of the cell text is
// the value.
func scanOverviewTables(doc *goquery.Document, values model.ValueMap) {
	doc.Find("table.sch_over_table tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return
		}
		text := strings.TrimSpace(cell.Text())
		for _, rule := range overviewRules {
			if !strings.Contains(text, rule.phrase) {
				continue
			}
			value := strings.TrimSpace(strings.ReplaceAll(text, rule.phrase, ""))
			if rule.cut != "" {
				value, _, _ = strings.Cut(value, rule.cut)
				value = strings.TrimSpace(value)
			}
			values.SetString(rule.field, value)
			break
		}
	})
}

// scanStatsTables reads the advanced-statistics tables. The label sits in
// the row's first cell; the value is in the following centered cell, not the
// label cell itself. Rows without a value cell are skipped.
func scanStatsTables(doc *goquery.Document, values model.ValueMap) {
	doc.Find("table.adv-table.table.table-striped tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return
		}
		text := strings.TrimSpace(cell.Text())
		for _, rule := range statsRules {
			if !strings.Contains(text, rule.phrase) {
				continue
			}
			value := row.Find("td.text-center").First()
			if value.Length() > 0 {
				values.SetString(rule.field, strings.TrimSpace(value.Text()))
			}
			break
		}
	})
}
