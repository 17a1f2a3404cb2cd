package model

// Field names a known fund statistic. The set is closed so that column
// references and enrichment keys are checked at compile time, while value
// maps stay open-ended: a field that was never extracted is simply absent.
type Field string

const (
	FieldFund        Field = "Fund"
	FieldCategory    Field = "Category"
	FieldSchemeCode  Field = "Scheme Code"
	FieldLaunchDate  Field = "Launch Date"
	FieldTotalAssets Field = "Total Assets (in Cr)"
	FieldTER         Field = "TER"
	FieldTurnover    Field = "Turn over (%)"

	FieldCAGRInception    Field = "CAGR Since Inception"
	FieldCAGR1Y           Field = "1 Year CAGR"
	FieldCAGR1YCategory   Field = "1 Year Category CAGR"
	FieldCAGR1YBenchmark  Field = "1 Year Benchmark CAGR"
	FieldCAGR3Y           Field = "3 Years CAGR"
	FieldCAGR3YCategory   Field = "3 Years Category CAGR"
	FieldCAGR3YBenchmark  Field = "3 Years Benchmark CAGR"
	FieldCAGR5Y           Field = "5 Years CAGR"
	FieldCAGR5YCategory   Field = "5 Years Category CAGR"
	FieldCAGR5YBenchmark  Field = "5 Years Benchmark CAGR"
	FieldCAGR10Y          Field = "10 Years CAGR"
	FieldCAGR10YCategory  Field = "10 Years Category CAGR"
	FieldCAGR10YBenchmark Field = "10 Years Benchmark CAGR"
	FieldBenchmarkType    Field = "Benchmark Type"
	FieldNAV              Field = "NAV"

	FieldAlpha        Field = "Alpha"
	FieldBeta         Field = "Beta"
	FieldStdDev       Field = "Standard Deviation"
	FieldSharpeRatio  Field = "Sharpe Ratio"
	FieldVolatility   Field = "Volatility"
	FieldMean         Field = "Mean"
	FieldSortinoRatio Field = "Sortino Ratio"
	FieldUpCapture    Field = "Up Market Capture\nRatio"
	FieldDownCapture  Field = "Down Market Capture\nRatio"
	FieldMaxDrawdown  Field = "Maximum Drawdown"
	FieldRSquared     Field = "R-Squared"
	FieldInfoRatio    Field = "Information Ratio"

	FieldPERatio Field = "P/E Ratio"
	FieldPBRatio Field = "P/B Ratio"
)

// ExportColumns is the documented column order of the categorized export.
var ExportColumns = []Field{
	FieldFund,
	FieldCategory,
	FieldSchemeCode,
	FieldLaunchDate,
	FieldTotalAssets,
	FieldTER,
	FieldTurnover,
	FieldCAGRInception,
	FieldCAGR1Y,
	FieldCAGR1YCategory,
	FieldCAGR1YBenchmark,
	FieldCAGR3Y,
	FieldCAGR3YCategory,
	FieldCAGR3YBenchmark,
	FieldCAGR5Y,
	FieldCAGR5YCategory,
	FieldCAGR5YBenchmark,
	FieldCAGR10Y,
	FieldCAGR10YCategory,
	FieldCAGR10YBenchmark,
	FieldBenchmarkType,
	FieldNAV,
	FieldAlpha,
	FieldBeta,
	FieldStdDev,
	FieldSharpeRatio,
	FieldVolatility,
	FieldMean,
	FieldSortinoRatio,
	FieldUpCapture,
	FieldDownCapture,
	FieldMaxDrawdown,
	FieldRSquared,
	FieldInfoRatio,
	FieldPERatio,
	FieldPBRatio,
}

// MetricFields are the risk-ratio sheet columns the loader resolves.
var MetricFields = []Field{
	FieldVolatility,
	FieldSharpeRatio,
	FieldBeta,
	FieldAlpha,
	FieldMean,
	FieldSortinoRatio,
	FieldUpCapture,
	FieldDownCapture,
	FieldMaxDrawdown,
	FieldRSquared,
	FieldInfoRatio,
}
