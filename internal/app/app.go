// Package app wires configuration, logging, and the Compass services
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/interfaces"
	"github.com/bobmcallan/compass/internal/services/advisor"
	"github.com/bobmcallan/compass/internal/services/analysis"
	"github.com/bobmcallan/compass/internal/services/portfolio"
)

// App holds the initialized services. It is the shared core used by
// cmd/compass and by integration tests.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Clock            common.Clock
	AnalysisService  interfaces.AnalysisService
	PortfolioService interfaces.PortfolioService
	AdvisorService   interfaces.AdvisorService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, and all services.
// configPath may be empty, in which case the default resolution logic is
// used: COMPASS_CONFIG, then compass.toml next to the binary, then the
// development fallback.
func NewApp(configPath string) (*App, error) {
	if configPath == "" {
		configPath = os.Getenv("COMPASS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "compass.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/compass.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	clock := common.SystemClock{}

	return newApp(config, logger, clock), nil
}

// NewAppWithDeps builds an App from already-constructed dependencies.
// Used by tests that need a silent logger or a frozen clock.
func NewAppWithDeps(config *common.Config, logger *common.Logger, clock common.Clock) *App {
	return newApp(config, logger, clock)
}

func newApp(config *common.Config, logger *common.Logger, clock common.Clock) *App {
	app := &App{
		Config:           config,
		Logger:           logger,
		Clock:            clock,
		AnalysisService:  analysis.NewService(logger, clock),
		PortfolioService: portfolio.NewService(logger, config.Policy.Concentration),
		AdvisorService:   advisor.NewService(logger, clock, config.Policy),
		StartupTime:      clock.Now(),
	}

	logger.Debug().
		Str("environment", config.Environment).
		Msg("Services initialized")

	return app
}
