package engine

import (
	"microfin_intake/pkg/models"
)

// Qualitative score scales. Business management is five components out of 13
// points; character is four components out of 11 and its components can go
// negative (bad references or informal debts subtract).
const (
	BusinessScoreMax  = 13
	CharacterScoreMax = 11
)

// ScoreResult is a qualitative gauge: raw points, percent of the maximum
// and the Low/Medium/High band the committee view paints.
type ScoreResult struct {
	Points  int     `json:"points"`
	Max     int     `json:"max"`
	Percent float64 `json:"percent"`
	Band    string  `json:"band"`
}

func band(percent float64) string {
	switch {
	case percent >= 66:
		return "High"
	case percent >= 33:
		return "Medium"
	default:
		return "Low"
	}
}

// BusinessScore totals the five management components. The investment plan
// quality component is floored at 1: every applicant has some plan.
func BusinessScore(app *models.LoanApplication) ScoreResult {
	plan := app.InvestmentPlanQualityScore
	if plan < 1 {
		plan = 1
	}
	total := app.DiversificationScore +
		app.ProfitabilityKnowledgeScore +
		app.OperationsManagementScore +
		plan +
		app.SuccessionPlanningScore
	pct := float64(total) / BusinessScoreMax * 100
	return ScoreResult{Points: total, Max: BusinessScoreMax, Percent: pct, Band: band(pct)}
}

// CharacterScore totals the four character components. Negative totals are
// reported as-is in points but the percent is floored at 0.
func CharacterScore(app *models.LoanApplication) ScoreResult {
	total := app.CharacterRefScore +
		app.CharacterPayHistoryScore +
		app.CharacterInformalDebtsScore +
		app.CharacterTransparencyScore
	pct := float64(total) / CharacterScoreMax * 100
	if pct < 0 {
		pct = 0
	}
	return ScoreResult{Points: total, Max: CharacterScoreMax, Percent: pct, Band: band(pct)}
}
