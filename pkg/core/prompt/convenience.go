package prompt

// Narrative prompt identifiers.
const (
	IDDebtReasonability = "narrative.debt_reasonability"
	IDSixCs             = "narrative.six_cs"
)

// GetNarrativePrompt returns a narrative prompt template by its short name
// (e.g. "debt_reasonability", "six_cs").
func GetNarrativePrompt(name string) (*PromptTemplate, error) {
	return Get().GetPrompt("narrative." + name)
}

// MustGetNarrativePrompt is like GetNarrativePrompt but panics on error.
// Built-in prompts make this safe for the two shipped dictamens.
func MustGetNarrativePrompt(name string) *PromptTemplate {
	p, err := GetNarrativePrompt(name)
	if err != nil {
		panic(err)
	}
	return p
}
