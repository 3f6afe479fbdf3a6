// Package narrative generates the committee dictamens: the debt
// reasonability analysis and the six-Cs recommendation. It feeds the
// engine's computed ratios into the prompt templates and cleans the model
// output into storable Markdown. A narrative failure is always surfaced as
// an error and never blocks the numeric analysis.
package narrative

import (
	"context"
	"fmt"

	"microfin_intake/pkg/core/engine"
	"microfin_intake/pkg/core/prompt"
	"microfin_intake/pkg/core/utils"
	"microfin_intake/pkg/models"
)

// PromptRunner executes a rendered prompt against a configured provider.
// *agent.Manager satisfies it.
type PromptRunner interface {
	ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

// Service builds and runs the narrative prompts.
type Service struct {
	runner    PromptRunner
	extractor *RangeExtractor
}

// NewService creates a narrative service on top of a prompt runner.
// The extractor is optional; without it the suggested credit range is
// recovered from the dictamen text only.
func NewService(runner PromptRunner, extractor *RangeExtractor) *Service {
	return &Service{runner: runner, extractor: extractor}
}

// DebtReasonability produces the endeudamiento dictamen
// (SALUDABLE / AL LIMITE / SOBRE-ENDEUDADO) from the computed ratios.
func (s *Service) DebtReasonability(ctx context.Context, app *models.LoanApplication) (string, error) {
	capacity := engine.AnalyzeCapacity(app)
	balance := engine.AnalyzeBalanceSheet(app)

	pt, err := prompt.GetNarrativePrompt("debt_reasonability")
	if err != nil {
		return "", err
	}

	pctx := prompt.NewContext().
		Set("TotalAssets", balance.TotalAssets).
		Set("InventoryValue", balance.InventoryValue).
		Set("TotalDebtPostLoan", balance.TotalDebtPostLoan).
		Set("LoanAmount", app.LoanAmount.Float()).
		Set("NetWorth", balance.NetWorth).
		Set("AnnualSales", balance.AnnualSales).
		Set("RequestedToInventoryPct", balance.RequestedToInventoryPct).
		Set("TotalDebtToInventoryPct", balance.TotalDebtToInventoryPct).
		Set("TotalDebtToAnnualSales", balance.TotalDebtToAnnualSales).
		Set("LeverageOverEquityPct", balance.LeverageOverEquityPct).
		Set("LeverageOverAssetsPct", balance.LeverageOverAssetsPct).
		Set("DebtCoverageRatio", capacity.DebtCoverageRatio)

	return s.run(ctx, "debt_reasonability", pt, pctx)
}

// SixCsResult is the committee dictamen plus the structured credit range
// the model was instructed to close with.
type SixCsResult struct {
	Analysis       string       `json:"analysis"`
	SuggestedRange *CreditRange `json:"suggested_range,omitempty"`
}

// SixCs produces the six-Cs dictamen and extracts the suggested range.
// The analysis text is returned even when the range cannot be recovered.
func (s *Service) SixCs(ctx context.Context, app *models.LoanApplication) (*SixCsResult, error) {
	capacity := engine.AnalyzeCapacity(app)
	balance := engine.AnalyzeBalanceSheet(app)
	character := engine.CharacterScore(app)
	business := engine.BusinessScore(app)

	pt, err := prompt.GetNarrativePrompt("six_cs")
	if err != nil {
		return nil, err
	}

	pctx := prompt.NewContext().
		Set("FullName", app.FullName).
		Set("BusinessName", app.BusinessName).
		Set("LoanAmount", app.LoanAmount.Float()).
		Set("CharacterPoints", character.Points).
		Set("CharacterMax", character.Max).
		Set("DisposableSurplus", capacity.DisposableSurplus).
		Set("DebtCoverageRatio", capacity.DebtCoverageRatio).
		Set("NetWorth", balance.NetWorth).
		Set("LeverageOverEquityPct", balance.LeverageOverEquityPct).
		Set("CommercialCoverage", balance.CommercialCoverage).
		Set("EnvironmentRisk", app.Supervision.RiskLevel).
		Set("BusinessScorePercent", business.Percent)

	analysis, err := s.run(ctx, "six_cs", pt, pctx)
	if err != nil {
		return nil, err
	}

	result := &SixCsResult{Analysis: analysis}

	if r, ok := ParseSuggestedRange(analysis); ok {
		result.SuggestedRange = r
	} else if s.extractor != nil {
		r, err := s.extractor.Extract(ctx, analysis)
		if err != nil {
			fmt.Printf("[NARRATIVE] range extraction failed: %v\n", err)
		} else {
			result.SuggestedRange = r
		}
	}

	return result, nil
}

func (s *Service) run(ctx context.Context, agentType string, pt *prompt.PromptTemplate, pctx *prompt.PromptExecutionContext) (string, error) {
	userPrompt, err := prompt.RenderUserPrompt(pt, pctx)
	if err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", pt.ID, err)
	}

	raw, err := s.runner.ExecutePrompt(ctx, agentType, userPrompt, pt.SystemPrompt, nil)
	if err != nil {
		return "", fmt.Errorf("%s generation failed: %w", pt.ID, err)
	}

	cleaned := utils.CleanMarkdown(raw)
	if !utils.ValidateMarkdown(cleaned) {
		return "", fmt.Errorf("%s output is not renderable markdown", pt.ID)
	}
	return cleaned, nil
}
