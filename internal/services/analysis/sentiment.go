package analysis

import (
	"fmt"

	"github.com/bobmcallan/compass/internal/models"
)

// Implied-return bucket boundary and the news-theme cap for the sentiment view
const (
	impliedReturnBandPct = 15.0
	maxNewsHighlights    = 3
)

var consensusText = map[models.Consensus]string{
	models.ConsensusStrongBuy:  "Analysts rate the stock a strong buy",
	models.ConsensusBuy:        "Analyst consensus is a buy",
	models.ConsensusHold:       "Analyst consensus is a hold",
	models.ConsensusSell:       "Analyst consensus is a sell",
	models.ConsensusStrongSell: "Analysts rate the stock a strong sell",
}

// AnalyzeSentiment maps the consensus to text, buckets the target-price
// implied return at ±15%, and carries up to the first three news themes
// verbatim. A missing sentiment section degrades to a neutral view.
func (s *Service) AnalyzeSentiment(stock *models.StockData) models.SentimentView {
	sent := stock.Sentiment
	if sent == nil {
		return models.SentimentView{
			ConsensusText: "No analyst coverage available",
			Lean:          models.SentimentNeutral,
			Commentary:    "Sentiment data unavailable.",
		}
	}

	view := models.SentimentView{
		ConsensusText: consensusText[sent.Consensus],
		Lean:          models.SentimentNeutral,
	}
	if view.ConsensusText == "" {
		view.ConsensusText = "No analyst coverage available"
	}

	if price := currentPrice(stock); price > 0 && sent.TargetMean > 0 {
		view.ImpliedReturnPct = (sent.TargetMean - price) / price * 100
		switch {
		case view.ImpliedReturnPct > impliedReturnBandPct:
			view.Lean = models.SentimentUpside
		case view.ImpliedReturnPct < -impliedReturnBandPct:
			view.Lean = models.SentimentDownside
		}
	}

	for i, theme := range sent.NewsThemes {
		if i >= maxNewsHighlights {
			break
		}
		view.Highlights = append(view.Highlights, theme)
	}

	view.Commentary = sentimentCommentary(view)
	return view
}

func currentPrice(stock *models.StockData) float64 {
	if stock.Technicals == nil {
		return 0
	}
	return stock.Technicals.Price
}

func sentimentCommentary(view models.SentimentView) string {
	switch view.Lean {
	case models.SentimentUpside:
		return fmt.Sprintf("%s; mean target implies %.1f%% upside.", view.ConsensusText, view.ImpliedReturnPct)
	case models.SentimentDownside:
		return fmt.Sprintf("%s; mean target implies %.1f%% downside.", view.ConsensusText, -view.ImpliedReturnPct)
	default:
		return fmt.Sprintf("%s; price targets sit close to the current price.", view.ConsensusText)
	}
}
