package narrative

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"microfin_intake/pkg/core/utils"
)

// CreditRange is the conservative lending band the six-Cs dictamen must
// close with (quota capped at 70% of SDN, collateral at 1.25x).
type CreditRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// The dictamen closes with "**Rango de Crédito Sugerido: Q [Mín] - Q [Máx]**".
var rangeLine = regexp.MustCompile(`Rango de Cr[eé]dito Sugerido:?\s*\*{0,2}\s*Q?\s*([\d][\d,\.]*)\s*[-–a]+\s*Q?\s*([\d][\d,\.]*)`)

// ParseSuggestedRange recovers the credit range from the dictamen text.
func ParseSuggestedRange(analysis string) (*CreditRange, bool) {
	m := rangeLine.FindStringSubmatch(analysis)
	if m == nil {
		return nil, false
	}
	min, okMin := parseAmount(m[1])
	max, okMax := parseAmount(m[2])
	if !okMin || !okMax || min <= 0 || max < min {
		return nil, false
	}
	return &CreditRange{Min: min, Max: max}, true
}

func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// RangeExtractor is the fallback path: when the dictamen text does not
// parse, it asks a Gemini model (via the stable SDK) to restate the range
// as strict JSON, then decodes it leniently.
type RangeExtractor struct {
	ModelName string
}

// NewRangeExtractor creates an extractor with the default model.
func NewRangeExtractor() *RangeExtractor {
	return &RangeExtractor{ModelName: "gemini-2.5-flash"}
}

// Extract asks the model to restate the suggested range from the analysis.
func (e *RangeExtractor) Extract(ctx context.Context, analysis string) (*CreditRange, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(e.ModelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)

	promptText := fmt.Sprintf(
		`Extrae el rango de crédito sugerido del siguiente dictamen. Responde SOLO con JSON: {"min": <número>, "max": <número>}.

Dictamen:
%s`, analysis)

	resp, err := model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return nil, fmt.Errorf("range extraction call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("range extraction returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	var out CreditRange
	if _, err := utils.SmartParse(sb.String(), &out); err != nil {
		return nil, fmt.Errorf("range extraction output unparseable: %w", err)
	}
	if out.Min <= 0 || out.Max < out.Min {
		return nil, fmt.Errorf("range extraction produced an invalid range: %+v", out)
	}
	return &out, nil
}
