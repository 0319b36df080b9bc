package strategy

import (
	"math"

	"FractalSentinel/internal/model"
)

// Tiers defines the regime alert mapping, highest first.
var Tiers = []model.AlertTier{
	{Label: "regime shift", MinScore: 0.8},
	{Label: "elevated", MinScore: 0.5},
	{Label: "watch", MinScore: 0.2},
}

// DefaultTier applies to peak scores below every tier.
var DefaultTier = model.AlertTier{Label: "stable", MinScore: 0}

// mapTier maps a peak regime score to an AlertTier.
func mapTier(peak float64) model.AlertTier {
	for _, t := range Tiers {
		if peak >= t.MinScore {
			return t
		}
	}
	return DefaultTier
}

// Evaluate interprets a report. threshold selects which regime scores count as change points.
func Evaluate(rep *model.Report, threshold float64) *model.Assessment {
	character, description, risk := classifyHurst(rep.Hurst.Exponent)

	a := &model.Assessment{
		Character:      character,
		Description:    description,
		Risk:           risk,
		PeakIndex:      -1,
		ScoreThreshold: threshold,
	}
	for i, s := range rep.RegimeScores {
		if s > a.PeakScore {
			a.PeakScore = s
			a.PeakIndex = i
		}
		if s > 0 && s >= threshold {
			a.ChangePoints = append(a.ChangePoints, i)
		}
	}
	a.Tier = mapTier(a.PeakScore)
	return a
}

// classifyHurst uses the dashboard's bands: below 0.4 mean-reverting, above 0.6 trending.
func classifyHurst(h float64) (model.HurstCharacter, string, model.RiskLevel) {
	switch {
	case math.IsNaN(h):
		return model.CharacterUndetermined, "Undetermined (no finite estimate)", model.RiskUnknown
	case h < 0.4:
		return model.CharacterMeanReverting, "Mean-reverting (anti-persistent)", model.RiskLow
	case h > 0.6:
		return model.CharacterTrending, "Trending (persistent)", model.RiskHigh
	default:
		return model.CharacterRandomWalk, "Random walk (Brownian motion)", model.RiskMedium
	}
}
