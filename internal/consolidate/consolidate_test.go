package consolidate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeReport(t *testing.T, name string, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.Save(path))
	return path
}

func readWorkbook(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, f.Sheets)

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		var cells []string
		for _, cell := range row.Cells {
			cells = append(cells, cell.String())
		}
		rows = append(rows, cells)
	}
	return rows
}

func col(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %q not in header", name)
	return -1
}

func TestConsolidateJoinsByNormalizedSchemeName(t *testing.T) {
	trailing := writeReport(t, "trailing.xlsx", [][]string{
		{"Trailing Returns Report"},
		{"Scheme Name", "Category", "NAV", "1 Year Return"},
		{"Alpha & Omega Fund", "Cat-A", "45.67", "12.5"},
		{"Second Fund - Growth", "Cat-B", "10.00", "8.0"},
	})
	risk := writeReport(t, "risk.xlsx", [][]string{
		{"Risk Ratios Report"},
		{"Scheme Name", "Category", "Volatility", "Sharpe Ratio"},
		{"ALPHA AND OMEGA FUND", "Cat-A", "14.2", "1.1"},
		{"Unmatched Fund", "Cat-C", "9.9", "0.5"},
	})

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Consolidate(trailing, risk, out))

	rows := readWorkbook(t, out)
	require.Len(t, rows, 3)
	header := rows[0]
	assert.Equal(t, outputColumns, header)

	scheme := col(t, header, "Scheme name")
	nav := col(t, header, "NAV")
	vol := col(t, header, "Volatility")
	sharpe := col(t, header, "Sharpe Ratio")

	assert.Equal(t, "Alpha & Omega Fund", rows[1][scheme])
	assert.Equal(t, "45.67", rows[1][nav])
	assert.Equal(t, "14.2", rows[1][vol])
	assert.Equal(t, "1.1", rows[1][sharpe])

	// Second fund never appears in the risk report: returns survive, risk
	// cells stay empty.
	assert.Equal(t, "Second Fund - Growth", rows[2][scheme])
	assert.Equal(t, "10.00", rows[2][nav])
	assert.Equal(t, "", rows[2][vol])
}

func TestConsolidateTrailingReportDefinesUniverse(t *testing.T) {
	trailing := writeReport(t, "trailing.xlsx", [][]string{
		{"Scheme Name", "Category", "NAV"},
		{"Only Fund", "Cat-A", "1.00"},
	})
	risk := writeReport(t, "risk.xlsx", [][]string{
		{"Scheme Name", "Category", "Volatility"},
		{"Risk Only Fund", "Cat-A", "20.0"},
	})

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Consolidate(trailing, risk, out))

	rows := readWorkbook(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "Only Fund", rows[1][0])
}

func TestConsolidatePreservesTrailingOrder(t *testing.T) {
	trailing := writeReport(t, "trailing.xlsx", [][]string{
		{"Scheme Name", "Category"},
		{"Zeta Fund", "Cat-A"},
		{"Alpha Fund", "Cat-A"},
		{"Mid Fund", "Cat-B"},
	})
	risk := writeReport(t, "risk.xlsx", [][]string{
		{"Scheme Name", "Category"},
	})

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Consolidate(trailing, risk, out))

	rows := readWorkbook(t, out)
	require.Len(t, rows, 4)
	assert.Equal(t, "Zeta Fund", rows[1][0])
	assert.Equal(t, "Alpha Fund", rows[2][0])
	assert.Equal(t, "Mid Fund", rows[3][0])
}

func TestConsolidateMissingReport(t *testing.T) {
	trailing := writeReport(t, "trailing.xlsx", [][]string{
		{"Scheme Name", "Category"},
		{"F1", "Cat-A"},
	})

	out := filepath.Join(t.TempDir(), "out.xlsx")
	err := Consolidate(trailing, filepath.Join(t.TempDir(), "absent.xlsx"), out)
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "alphaandomegafund", normalize("  Alpha & Omega Fund "))
	assert.Equal(t, "alphaandomegafund", normalize("ALPHA AND OMEGA FUND"))
	assert.Equal(t, "secondfundgrowth", normalize("Second Fund - Growth"))
	assert.Equal(t, "", normalize("  -  "))
}

func TestResolveReportColumnsContainmentFallback(t *testing.T) {
	headers := []string{"Scheme Name as on Jul 2026", "Category", "Volatility (%)"}
	cols := resolveReportColumns(headers, riskAliases)

	assert.Equal(t, 0, cols["Scheme name"])
	assert.Equal(t, 2, cols["Volatility"])
}
