package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/compass/internal/app"
	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

func testApp() *app.App {
	return app.NewAppWithDeps(
		common.NewDefaultConfig(),
		common.NewSilentLogger(),
		common.FrozenClock{Instant: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	)
}

func TestBuildReport_StockOnly(t *testing.T) {
	a := testApp()
	profile := &models.UserProfile{RiskTolerance: models.RiskToleranceModerate}
	stock := &models.StockData{
		Ticker:     "AAPL",
		Technicals: &models.Technicals{Price: 180, SMA50: 175, SMA200: 165, High52Week: 200, Low52Week: 140, RSI14: 55},
	}

	report, err := buildReport(a, profile, stock, nil, map[string]float64{}, map[string]float64{}, 0)
	require.NoError(t, err)

	require.NotNil(t, report.Analysis)
	assert.Nil(t, report.Context, "no portfolio, no context")
	require.NotNil(t, report.Recommendation)
	assert.Equal(t, "AAPL", report.Recommendation.Ticker)
}

func TestBuildReport_WithPortfolio(t *testing.T) {
	a := testApp()
	profile := &models.UserProfile{RiskTolerance: models.RiskToleranceModerate}
	stock := &models.StockData{
		Ticker:     "AAPL",
		Technicals: &models.Technicals{Price: 180},
	}
	portfolio := &models.Portfolio{
		Name: "Core",
		Holdings: []models.Holding{
			{Ticker: "AAPL", Shares: 10, AvgCost: 150},
			{Ticker: "MSFT", Shares: 5, AvgCost: 300},
		},
	}
	prices := map[string]float64{"AAPL": 180, "MSFT": 350}

	report, err := buildReport(a, profile, stock, portfolio, prices, nil, 0)
	require.NoError(t, err)

	require.Len(t, report.Allocations, 2)
	require.NotNil(t, report.Concentration)
	require.NotNil(t, report.Context)
	require.NotNil(t, report.Recommendation)
}

func TestBuildReport_MissingStockFails(t *testing.T) {
	a := testApp()

	_, err := buildReport(a, &models.UserProfile{}, nil, nil, nil, nil, 0)
	assert.ErrorIs(t, err, models.ErrMissingStock)
}

func TestReadWriteJSON(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"risk_tolerance":"high"}`), 0644))

	var profile models.UserProfile
	require.NoError(t, readJSON(in, &profile))
	assert.Equal(t, models.RiskToleranceHigh, profile.RiskTolerance)

	assert.Error(t, readJSON(filepath.Join(dir, "absent.json"), &profile))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0644))
	assert.Error(t, readJSON(bad, &profile))
}

func TestWriteReport_ToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	report := &Report{Recommendation: &models.Recommendation{Ticker: "AAPL", PrimaryAction: models.ActionHold}}

	require.NoError(t, writeReport(report, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "AAPL", decoded.Recommendation.Ticker)
}
