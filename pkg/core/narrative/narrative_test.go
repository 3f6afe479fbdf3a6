package narrative

import (
	"context"
	"strings"
	"testing"

	"microfin_intake/pkg/models"
)

type stubRunner struct {
	lastAgentType string
	lastPrompt    string
	lastSystem    string
	response      string
	err           error
}

func (s *stubRunner) ExecutePrompt(ctx context.Context, agentType, rawPrompt, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	s.lastAgentType = agentType
	s.lastPrompt = rawPrompt
	s.lastSystem = rawSystemPrompt
	return s.response, s.err
}

func sampleApp() *models.LoanApplication {
	return &models.LoanApplication{
		FullName:          "María López",
		BusinessName:      "Tienda La Esperanza",
		LoanAmount:        10000,
		LoanTerm:          12,
		LoanInterestRate:  24,
		LoanPaymentMethod: models.PaymentLevel,
		SalesGood:         models.SalesProfile{Amount: 1000, Frequency: 20},
		SalesRegular:      models.SalesProfile{Amount: 600, Frequency: 8},
		SalesBad:          models.SalesProfile{Amount: 300, Frequency: 2},
		RealGuarantees:    []models.RealGuarantee{{EstimatedValue: 15000, QuickSaleValue: 9000}},
	}
}

func TestDebtReasonabilityFeedsRatiosIntoPrompt(t *testing.T) {
	runner := &stubRunner{response: "```markdown\n## Análisis\nDictamen: SALUDABLE\n```"}
	svc := NewService(runner, nil)

	out, err := svc.DebtReasonability(context.Background(), sampleApp())
	if err != nil {
		t.Fatalf("DebtReasonability: %v", err)
	}
	if runner.lastAgentType != "debt_reasonability" {
		t.Errorf("agent type = %s", runner.lastAgentType)
	}
	if !strings.Contains(runner.lastPrompt, "Ventas Anuales: Q 304800") {
		t.Errorf("annual sales not rendered into prompt:\n%s", runner.lastPrompt)
	}
	if !strings.Contains(runner.lastSystem, "Analista Senior de Riesgos") {
		t.Errorf("system prompt wrong: %s", runner.lastSystem)
	}
	if strings.Contains(out, "```") {
		t.Errorf("output not cleaned: %q", out)
	}
}

func TestSixCsExtractsRangeFromText(t *testing.T) {
	runner := &stubRunner{response: `## Dictamen de las 6 C's

La capacidad es adecuada.

**Rango de Crédito Sugerido: Q 5,000 - Q 8,500**`}
	svc := NewService(runner, nil)

	res, err := svc.SixCs(context.Background(), sampleApp())
	if err != nil {
		t.Fatalf("SixCs: %v", err)
	}
	if runner.lastAgentType != "six_cs" {
		t.Errorf("agent type = %s", runner.lastAgentType)
	}
	if !strings.Contains(runner.lastPrompt, "María López") {
		t.Errorf("client name not rendered:\n%s", runner.lastPrompt)
	}
	if res.SuggestedRange == nil {
		t.Fatal("range not extracted")
	}
	if res.SuggestedRange.Min != 5000 || res.SuggestedRange.Max != 8500 {
		t.Errorf("range = %+v", res.SuggestedRange)
	}
}

func TestSixCsKeepsAnalysisWhenRangeMissing(t *testing.T) {
	runner := &stubRunner{response: "Análisis sin rango."}
	svc := NewService(runner, nil)

	res, err := svc.SixCs(context.Background(), sampleApp())
	if err != nil {
		t.Fatalf("SixCs: %v", err)
	}
	if res.Analysis == "" {
		t.Error("analysis should survive a missing range")
	}
	if res.SuggestedRange != nil {
		t.Errorf("unexpected range %+v", res.SuggestedRange)
	}
}

func TestParseSuggestedRange(t *testing.T) {
	cases := []struct {
		name string
		in   string
		min  float64
		max  float64
		ok   bool
	}{
		{"bold with commas", "**Rango de Crédito Sugerido: Q 5,000 - Q 8,500**", 5000, 8500, true},
		{"plain", "Rango de Credito Sugerido: Q5000 - Q8000", 5000, 8000, true},
		{"a-separator", "Rango de Crédito Sugerido: Q 4,000 a Q 6,000", 4000, 6000, true},
		{"inverted", "Rango de Crédito Sugerido: Q 9,000 - Q 2,000", 0, 0, false},
		{"absent", "Sin recomendación numérica.", 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ParseSuggestedRange(c.in)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && (got.Min != c.min || got.Max != c.max) {
				t.Errorf("got %+v, want %v-%v", got, c.min, c.max)
			}
		})
	}
}
