// Package export writes the categorized fund-statistics report: one flat
// CSV with a header row and per-category sections, each opened by a row
// holding only the category name.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/model"
)

// TimestampedPath builds the export file path for a run.
func TimestampedPath(dir string, now time.Time) string {
	name := fmt.Sprintf("fund-stats_%s.csv", now.Format("2006-01-02_15-04-05"))
	return filepath.Join(dir, name)
}

// WriteCSV writes the results grouped by category. Categories appear in
// categoryOrder; a category with no members is skipped, and a category not
// listed in the order never appears in the output even when it has data.
// Funds without a Category field are excluded with a diagnostic. Absent
// fields render as empty cells.
func WriteCSV(path string, results []model.ValueMap, categoryOrder []string, columns []model.Field) error {
	byCategory := groupByCategory(results)

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = string(col)
	}
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, category := range categoryOrder {
		rows, ok := byCategory[category]
		if !ok {
			continue
		}
		if err := w.Write([]string{category}); err != nil {
			return eris.Wrap(err, "export: write section row")
		}
		for _, vm := range rows {
			if err := w.Write(buildRow(vm, columns)); err != nil {
				return eris.Wrap(err, "export: write row")
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}

// groupByCategory partitions results by their Category field, preserving
// arrival order within each category.
func groupByCategory(results []model.ValueMap) map[string][]model.ValueMap {
	byCategory := make(map[string][]model.ValueMap)
	for _, vm := range results {
		category, ok := vm.Lookup(model.FieldCategory)
		if !ok {
			zap.L().Warn("fund has no category, skipping in export",
				zap.String("fund", vm.Text(model.FieldFund)),
			)
			continue
		}
		name := category.Text()
		byCategory[name] = append(byCategory[name], vm)
	}
	return byCategory
}

func buildRow(vm model.ValueMap, columns []model.Field) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = vm.Text(col)
	}
	return row
}
