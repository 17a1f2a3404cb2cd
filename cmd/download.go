package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sshravan91/fundscope/internal/fetcher"
)

// riskRatiosURL is the report-builder export for the risk-ratios sheet,
// pre-filtered to the fund houses and equity categories this pipeline
// tracks.
const riskRatiosURL = "https://www.mutualfundtools.com/admin-common/download/reportbuilder/downloadRiskRatiosReport" +
	"?name=5%20Largest%20Fund%20Houses%2C10%20Largest%20Fund%20Houses%2C15%20Largest%20Fund%20Houses" +
	"&category=Equity:%20All,Equity:%20Contra,Equity:%20Dividend%20Yield,Equity:%20ELSS,Equity:%20Flexi%20Cap," +
	"Equity:%20Focused,Equity:%20Large%20and%20Mid%20Cap,Equity:%20Large%20Cap,Equity:%20Mid%20Cap," +
	"Equity:%20Multi%20Cap,Equity:%20Small%20Cap,Equity:%20Value" +
	"&fieldlist=Volatility,Sharpe%20Ratio,Beta,Alpha,Up%20Market%20Capture%20Ratio,Down%20Market%20Capture%20Ratio," +
	"Mean,Sortino%20Ratio,Maximum%20Drawdown,R-Squared,Information%20Ratio,Treynor%20Ratio,AUM,Expense%20Ratio"

var (
	downloadJSessionID    string
	downloadSessionCookie string
	downloadURL           string
	downloadOut           string
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the risk-ratios spreadsheet using session cookies",
	Long:  "Fetches the risk-ratios report with cookies acquired from an interactive login; the login itself stays outside this tool.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if downloadJSessionID == "" {
			return eris.New("download: --jsessionid is required")
		}

		out := downloadOut
		if out == "" {
			out = cfg.RiskRatios.Path
		}

		cookies := map[string]string{"JSESSIONID": downloadJSessionID}
		if downloadSessionCookie != "" {
			cookies["session_cookie"] = downloadSessionCookie
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:    cfg.Research.UserAgent,
			Timeout:      time.Duration(cfg.RiskRatios.DownloadTimeout) * time.Second,
			RateLimiters: fetcher.DefaultRateLimiters(),
		})

		n, err := f.DownloadToFile(cmd.Context(), downloadURL, out, fetcher.DownloadOptions{
			Cookies: cookies,
			Headers: map[string]string{
				"Accept":  "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
				"Referer": "https://www.mutualfundtools.com/report-builder/risk-ratios",
			},
		})
		if err != nil {
			return err
		}

		fmt.Printf("saved %d bytes to %s\n", n, out)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVar(&downloadJSessionID, "jsessionid", "", "JSESSIONID cookie value (required)")
	downloadCmd.Flags().StringVar(&downloadSessionCookie, "session-cookie", "", "optional session_cookie value")
	downloadCmd.Flags().StringVar(&downloadURL, "url", riskRatiosURL, "report download URL")
	downloadCmd.Flags().StringVar(&downloadOut, "out", "", "output path (default from config)")
	rootCmd.AddCommand(downloadCmd)
}
