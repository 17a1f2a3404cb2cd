package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/enrich"
	"github.com/sshravan91/fundscope/internal/export"
	"github.com/sshravan91/fundscope/internal/extract"
	"github.com/sshravan91/fundscope/internal/fetcher"
	"github.com/sshravan91/fundscope/internal/mapping"
	"github.com/sshravan91/fundscope/internal/model"
	"github.com/sshravan91/fundscope/internal/riskratio"
	"github.com/sshravan91/fundscope/internal/runner"
)

var (
	runMappingPath   string
	runRiskPath      string
	runFromSeed      bool
	runUpdateMapping bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract, enrich and export fund statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		mappingPath := runMappingPath
		if mappingPath == "" {
			mappingPath = cfg.Mapping.Path
		}
		riskPath := runRiskPath
		if riskPath == "" {
			riskPath = cfg.RiskRatios.Path
		}

		store := mapping.NewStore()
		if err := store.Load(mappingPath); err != nil {
			zap.L().Warn("mapping load failed, enrichment degraded", zap.Error(err))
		}

		metrics := riskratio.NewLoader()
		if err := metrics.Load(riskPath); err != nil {
			zap.L().Warn("risk ratios load failed, enrichment degraded", zap.Error(err))
		}

		ids, categories, seedRecords, err := resolveFundList(store)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return eris.New("no funds to process")
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:    cfg.Research.UserAgent,
			Timeout:      time.Duration(cfg.Research.TimeoutSecs) * time.Second,
			RateLimiters: fetcher.DefaultRateLimiters(),
		})
		extractor := extract.New(f, cfg.Research.BaseURL)
		enricher := enrich.New(store, metrics, f, cfg.Stats.BaseURL)

		process := func(ctx context.Context, id model.Identifier) model.Outcome {
			outcome := extractor.Extract(ctx, id)
			if outcome.OK() {
				enricher.Enrich(ctx, outcome.Values, id.Primary())
			}
			return outcome
		}

		result := runner.New(process, cfg.Runner.Workers).RunAll(ctx, ids)

		if len(result.NoData) > 0 {
			fmt.Printf("%d funds have no data: %s\n", len(result.NoData), strings.Join(result.NoData, ", "))
		}

		outPath := export.TimestampedPath(cfg.Export.Dir, time.Now())
		if err := export.WriteCSV(outPath, result.Values, categories, model.ExportColumns); err != nil {
			return err
		}
		fmt.Printf("exported %d funds to %s\n", len(result.Values), outPath)

		if runUpdateMapping && seedRecords != nil {
			mapping.AttachSchemeCodes(seedRecords, result.Values)
			if err := mapping.ExportJSON("funds_and_categories.json", seedRecords, categories); err != nil {
				return err
			}
		}

		return nil
	},
}

// resolveFundList picks the fund universe: the mapping document's display
// keys by default, or the seed YAML (which may carry secondary slugs) with
// --from-seed. Seed records are only built when the mapping export needs
// them.
func resolveFundList(store *mapping.Store) ([]model.Identifier, []string, []model.MappingRecord, error) {
	if !runFromSeed {
		keys := store.DisplayKeys()
		ids := make([]model.Identifier, len(keys))
		for i, k := range keys {
			ids[i] = model.Identifier(k)
		}
		return ids, store.Categories(), nil, nil
	}

	seed, err := mapping.LoadSeed(cfg.Mapping.SeedPath)
	if err != nil {
		return nil, nil, nil, err
	}
	ids := make([]model.Identifier, len(seed.Funds))
	for i, entry := range seed.Funds {
		ids[i] = model.Identifier(entry)
	}
	var records []model.MappingRecord
	if runUpdateMapping {
		records = mapping.RecordsFromSeed(seed.Funds)
	}
	return ids, seed.Categories, records, nil
}

func init() {
	runCmd.Flags().StringVar(&runMappingPath, "mapping", "", "path to the funds/categories mapping JSON (default from config)")
	runCmd.Flags().StringVar(&runRiskPath, "risk-ratios", "", "path to the risk ratios spreadsheet (default from config)")
	runCmd.Flags().BoolVar(&runFromSeed, "from-seed", false, "take the fund list from the seed YAML instead of the mapping JSON")
	runCmd.Flags().BoolVar(&runUpdateMapping, "update-mapping", false, "write funds_and_categories.json with scheme codes learned this run (requires --from-seed)")
	rootCmd.AddCommand(runCmd)
}
