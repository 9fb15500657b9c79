package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bobmcallan/compass/internal/app"
	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/interfaces"
	"github.com/bobmcallan/compass/internal/models"
)

// Report is the combined output document written by the CLI
type Report struct {
	Analysis       *models.AnalysisResult      `json:"analysis"`
	Allocations    []models.Allocation         `json:"allocations,omitempty"`
	Concentration  *models.ConcentrationReport `json:"concentration,omitempty"`
	Context        *models.PortfolioContext    `json:"portfolio_context,omitempty"`
	Recommendation *models.Recommendation      `json:"recommendation,omitempty"`
}

func main() {
	var (
		configPath    = flag.String("config", "", "path to compass.toml (default: COMPASS_CONFIG, then binary dir)")
		profilePath   = flag.String("profile", "", "path to user profile JSON (optional, defaults applied)")
		stockPath     = flag.String("stock", "", "path to stock snapshot JSON (required)")
		portfolioPath = flag.String("portfolio", "", "path to portfolio JSON (optional)")
		pricesPath    = flag.String("prices", "", "path to ticker->price JSON map (optional)")
		betasPath     = flag.String("betas", "", "path to ticker->beta JSON map (optional)")
		horizonMonths = flag.Int("horizon", 0, "scenario horizon in months (0 derives it from the profile)")
		outputPath    = flag.String("output", "", "write the report to this file instead of stdout")
		showVersion   = flag.Bool("version", false, "print version and exit")
		quiet         = flag.Bool("quiet", false, "suppress the startup banner")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("compass %s (build %s, commit %s)\n",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		common.PrintBanner(a.Config, a.Logger)
	}

	if *stockPath == "" {
		fmt.Fprintln(os.Stderr, "A stock snapshot is required (-stock)")
		flag.Usage()
		os.Exit(1)
	}

	var stock models.StockData
	if err := readJSON(*stockPath, &stock); err != nil {
		a.Logger.Fatal().Err(err).Str("path", *stockPath).Msg("Failed to load stock snapshot")
	}

	profile := &models.UserProfile{}
	if *profilePath != "" {
		if err := readJSON(*profilePath, profile); err != nil {
			a.Logger.Fatal().Err(err).Str("path", *profilePath).Msg("Failed to load profile")
		}
	}

	var portfolio *models.Portfolio
	if *portfolioPath != "" {
		portfolio = &models.Portfolio{}
		if err := readJSON(*portfolioPath, portfolio); err != nil {
			a.Logger.Fatal().Err(err).Str("path", *portfolioPath).Msg("Failed to load portfolio")
		}
	}

	prices := map[string]float64{}
	if *pricesPath != "" {
		if err := readJSON(*pricesPath, &prices); err != nil {
			a.Logger.Fatal().Err(err).Str("path", *pricesPath).Msg("Failed to load prices")
		}
	}
	// The snapshot's own price stands in when no price map entry exists
	if stock.Technicals != nil && stock.Technicals.Price > 0 {
		if _, ok := prices[stock.Ticker]; !ok {
			prices[stock.Ticker] = stock.Technicals.Price
		}
	}

	betas := map[string]float64{}
	if *betasPath != "" {
		if err := readJSON(*betasPath, &betas); err != nil {
			a.Logger.Fatal().Err(err).Str("path", *betasPath).Msg("Failed to load betas")
		}
	}

	report, err := buildReport(a, profile, &stock, portfolio, prices, betas, *horizonMonths)
	if err != nil {
		a.Logger.Fatal().Err(err).Msg("Analysis failed")
	}

	if err := writeReport(report, *outputPath); err != nil {
		a.Logger.Fatal().Err(err).Msg("Failed to write report")
	}
}

// buildReport runs the full pipeline: analysis, then portfolio valuation
// and context when a portfolio is supplied, then the final recommendation.
func buildReport(a *app.App, profile *models.UserProfile, stock *models.StockData, portfolio *models.Portfolio, prices, betas map[string]float64, horizonMonths int) (*Report, error) {
	result, err := a.AnalysisService.AnalyzeStock(profile, stock, interfaces.AnalyzeOptions{HorizonMonths: horizonMonths})
	if err != nil {
		return nil, err
	}

	report := &Report{Analysis: result}

	if portfolio != nil {
		allocations := a.PortfolioService.CalculateAllocation(portfolio, prices)
		concentration := a.PortfolioService.DetectConcentrationRisk(allocations)
		report.Allocations = allocations
		report.Concentration = &concentration
		report.Context = a.PortfolioService.BuildContext(stock.Ticker, portfolio, prices, betas)
	}

	recommendation, err := a.AdvisorService.BuildRecommendation(result, profile, report.Context)
	if err != nil {
		return nil, err
	}
	report.Recommendation = recommendation

	return report, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

func writeReport(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
